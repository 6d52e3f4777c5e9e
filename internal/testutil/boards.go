package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testdataDir returns the path to the repository testdata directory from a
// package two levels below the root (internal/x or cmd/x).
func testdataDir() string {
	return filepath.Join("..", "..", "testdata")
}

// BoardFile returns the full path to a board fixture.
func BoardFile(name string) string {
	return filepath.Join(testdataDir(), "boards", name)
}

// ReadBoardRows reads a board fixture and returns its rows with line
// endings stripped. It calls t.Fatal if the fixture cannot be read.
func ReadBoardRows(t *testing.T, name string) []string {
	t.Helper()
	content, err := os.ReadFile(BoardFile(name))
	if err != nil {
		t.Fatalf("failed to read board fixture %s: %v", name, err)
	}
	text := strings.TrimSuffix(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	return strings.Split(text, "\n")
}

// EmptyRows returns eight rows of empty cells.
func EmptyRows() []string {
	rows := make([]string, 8)
	for i := range rows {
		rows[i] = "_ _ _ _ _ _ _ _"
	}
	return rows
}

// Place returns a copy of rows with code written at column x, row y.
// Cells are assumed to be single characters separated by single spaces.
func Place(rows []string, x, y int, code byte) []string {
	out := make([]string, len(rows))
	copy(out, rows)
	line := []byte(out[y])
	line[2*x] = code
	out[y] = string(line)
	return out
}

// TwoPieceRows returns an otherwise empty board with a White piece and a
// Black piece placed at the given cells.
func TwoPieceRows(white byte, wx, wy int, black byte, bx, by int) []string {
	return Place(Place(EmptyRows(), wx, wy, white), bx, by, black)
}
