package archive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

// ErrMissingMessages indicates an archive without the expected top-level
// "messages" key.
var ErrMissingMessages = errors.New(`archive has no "messages" key`)

// gzip magic bytes.
var gzipMagic = []byte{0x1f, 0x8b}

// Load reads a chat-export archive and returns its raw message records.
// Gzipped archives (for example result.json.gz) are decompressed
// transparently, detected by magic bytes rather than file extension.
func Load(path string) ([]Message, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided archive path is expected
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var r io.Reader = br

	if head, err := br.Peek(len(gzipMagic)); err == nil && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("decompressing archive %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	var export Export
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decoding archive %s: %w", path, err)
	}

	if export.Messages == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingMessages)
	}

	return *export.Messages, nil
}
