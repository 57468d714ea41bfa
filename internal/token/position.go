package token

import "path/filepath"

// Position names a single point in a source buffer: a split
// directory/basename pair, a 1-based line and column, and the byte offset of
// the position within the buffer (spec §3, §4.2). Positions are value types
// and never describe a range.
//
// Line == 0 means "no position"; it renders as "-" when printed (spec §3,
// §6).
type Position struct {
	Directory string
	File      string
	Line      int
	Column    int
	Offset    int
}

// IsValid reports whether the position names an actual point in the source.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Filename rejoins the directory/basename split the scanner performs on
// construction (spec §4.2).
func (p Position) Filename() string {
	if p.Directory == "" {
		return p.File
	}
	return filepath.Join(p.Directory, p.File)
}

// String renders a position as "<directory>/<file>:<line>:<column>", or "-"
// for an absent position, matching the AST printer's position rendering
// (spec §6).
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return p.Filename() + ":" + itoa(p.Line) + ":" + itoa(p.Column)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// SplitFilename splits a path into the (directory, basename) pair every
// Position carries, mirroring the teacher's own filename handling in
// langserver/internal/source/uri.go.
func SplitFilename(path string) (directory, file string) {
	directory, file = filepath.Split(path)
	directory = filepath.Clean(directory)
	if directory == "." && !hasDotSlashPrefix(path) {
		directory = ""
	}
	return directory, file
}

func hasDotSlashPrefix(path string) bool {
	return len(path) >= 2 && path[0] == '.' && (path[1] == '/' || path[1] == filepath.Separator)
}
