package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

// InvalidUTF8Error reports an input line that is not valid UTF-8. It ends
// the processing of that input.
type InvalidUTF8Error struct {
	Line int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("stream: line %d: invalid UTF-8", e.Line)
}

// Reader splits an input into lines. Records end at '\n'; a '\r' before
// it is dropped, and so is a UTF-8 byte order mark at the very start.
// There is no maximum line length.
type Reader struct {
	r         *bufio.Reader
	line      int
	normalize bool
	eof       bool
}

// NewReader returns a line reader over r. With normalize set every line is
// brought into Unicode normalization form C, which joins decomposed
// sequences such as those written by macOS file systems.
func NewReader(r io.Reader, normalize bool) *Reader {
	return &Reader{
		r:         bufio.NewReader(r),
		normalize: normalize,
	}
}

// Line returns the number of lines read so far.
func (r *Reader) Line() int {
	return r.line
}

// ReadLine returns the next line without its terminator, or io.EOF once
// the input is exhausted. A final line without a terminator is returned
// like any other.
func (r *Reader) ReadLine() (string, error) {
	if r.eof {
		return "", io.EOF
	}
	s, err := r.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("stream: line %d: %w", r.line+1, err)
		}
		r.eof = true
		if s == "" {
			return "", io.EOF
		}
	}
	r.line++

	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	if !utf8.ValidString(s) {
		return "", &InvalidUTF8Error{Line: r.line}
	}
	if r.line == 1 {
		// The line is valid UTF-8 at this point, so the decoder only
		// strips the byte order mark.
		s, err = unicode.UTF8BOM.NewDecoder().String(s)
		if err != nil {
			return "", fmt.Errorf("stream: line 1: %w", err)
		}
	}
	if r.normalize {
		s = norm.NFC.String(s)
	}
	return s, nil
}
