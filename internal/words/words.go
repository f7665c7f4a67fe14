// internal/words/words.go
//
// Word List Source: supplies the pool of candidate root words.
//
// Sources:
//   - EmbeddedSource: the bundled assets/start.txt (default).
//   - FileSource:     a newline-delimited file on disk (WORDS_START_FILE).
//
// Loading rules:
//   • One word per line; lines are lowercased and trimmed.
//   • Blank lines and '#' comments are skipped.
//   • A source that cannot be located or read fails with ErrResourceMissing.
//     A source that loads but yields no words is NOT an error; callers fall
//     back to DefaultRoot.

package words

import (
	"errors"
	"fmt"
	"os"

	"github.com/robalobadob/wordscramble/assets"
)

// DefaultRoot is used when a successfully loaded list has no usable entry.
const DefaultRoot = "silkworm"

// ErrResourceMissing reports that the word list could not be located or read.
var ErrResourceMissing = errors.New("words: resource missing")

// Source supplies the pool of root words.
type Source interface {
	LoadWords() ([]string, error)
}

// EmbeddedSource reads the word list bundled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) LoadWords() ([]string, error) {
	ws, err := assets.StartWords()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrResourceMissing, assets.StartFile, err)
	}
	return ws, nil
}

// FileSource reads a newline-delimited word list from Path.
type FileSource struct {
	Path string
}

func (s FileSource) LoadWords() ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceMissing, err)
	}
	defer f.Close()

	ws, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrResourceMissing, s.Path, err)
	}
	return ws, nil
}

// SourceFor returns a FileSource when path is set, otherwise the embedded list.
func SourceFor(path string) Source {
	if path == "" {
		return EmbeddedSource{}
	}
	return FileSource{Path: path}
}

// StaticSource serves a fixed list. Useful for hosts that already hold the
// words in memory, and for tests.
type StaticSource []string

func (s StaticSource) LoadWords() ([]string, error) {
	return append([]string(nil), s...), nil
}
