package parser

import "fmt"

// Error reports that no grammar derivation covers a line. A line whose
// candidates are all pruned away later is reported by prune.Error.
type Error struct {
	Message string
	Offset  int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at column %d", e.Message, e.Column)
}

func errAt(offset, column int, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Offset: offset, Column: column}
}
