package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a JSON document of type T from either the file named
// by its --file flag or from piped stdin. The import command uses it to
// read snapshots written by export, so both `import -f tasks.json` and
// `export | import` work.
type FileReader[T any] struct {
	path string
}

// Flag returns the --file flag wired to this reader. Register it on the
// command that calls Read.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to a JSON file (reads stdin when piped)",
		Destination: &fr.path,
	}
}

// Read decodes the document. Reading stdin from an interactive terminal is
// rejected so a bare invocation fails fast instead of hanging on input.
func (fr *FileReader[T]) Read() (T, error) {
	var in io.Reader
	var doc T

	if fr.path != "" {
		f, err := os.Open(fr.path)
		if err != nil {
			return doc, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return doc, fmt.Errorf("stdin is a terminal: pass -f <file> or pipe JSON in")
		}
		in = os.Stdin
	}

	if err := json.NewDecoder(in).Decode(&doc); err != nil {
		return doc, fmt.Errorf("decode JSON: %w", err)
	}

	return doc, nil
}
