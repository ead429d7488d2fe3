// upgantt - Uptime Gantt Chart Tool
//
// upgantt parses a chat-export log from a monitoring bot, reconstructs
// per-service UP/DOWN status intervals, and renders them as a Gantt-style
// timeline chart.
package main

import (
	"os"

	"github.com/upgantt/upgantt/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
