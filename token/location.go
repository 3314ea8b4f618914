package token

import "fmt"

// SourceLocation is a reference to a position within the source text.
type SourceLocation struct {
	Lineno uint32 // number of newlines observed before this point
	Colno  uint32 // number of bytes since the most recent newline
	Offset uint32 // number of bytes since the beginning of the input
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%d:%d", l.Lineno, l.Colno)
}

// Advance updates the location by walking every byte of spelling,
// resetting the column on each newline.
func (l *SourceLocation) Advance(spelling string) {
	for i := 0; i < len(spelling); i++ {
		if spelling[i] == '\n' {
			l.Lineno++
			l.Colno = 0
		} else {
			l.Colno++
		}
		l.Offset++
	}
}
