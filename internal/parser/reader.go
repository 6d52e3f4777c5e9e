package parser

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/duel-check/internal/chess"
	"github.com/lgbarn/duel-check/internal/errors"
)

// ReadRows reads every line from r with the trailing "\n" or "\r\n" removed.
// A final line without a newline is kept; a trailing newline does not
// produce an extra empty row.
func ReadRows(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	var rows []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			rows = append(rows, line)
		}
		if err == io.EOF {
			return rows, nil
		}
	}
}

// ParseFile opens path and parses the board it contains.
// Open and read failures carry the path; validation errors are returned as is.
func ParseFile(path string) (chess.Board, error) {
	rows, err := readFile(path)
	if err != nil {
		return chess.Board{}, err
	}
	return Parse(rows)
}

// readFile returns the rows of the file at path.
func readFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only

	rows, err := ReadRows(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return rows, nil
}
