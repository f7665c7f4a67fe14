package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed start.txt dictionary.txt
var FS embed.FS

// Names of the bundled resources inside FS.
const (
	StartFile      = "start.txt"
	DictionaryFile = "dictionary.txt"
)

// ReadLines scans r one word per line, lowercasing and trimming each entry.
// Blank lines and '#' comments are skipped.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// StartWords returns the bundled root-word pool.
func StartWords() ([]string, error) {
	return readLines(StartFile)
}

// DictionaryWords returns the bundled English dictionary.
func DictionaryWords() ([]string, error) {
	return readLines(DictionaryFile)
}
