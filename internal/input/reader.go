// Package input reads interactive answers from the user.
package input

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Reader yields one answer per call, terminated by delim.
type Reader interface {
	ReadString(delim byte) (string, error)
}

// LineReader reads answers from any stream.
type LineReader struct {
	buf *bufio.Reader
}

// NewLineReader buffers src for line-oriented reads.
func NewLineReader(src io.Reader) *LineReader {
	return &LineReader{buf: bufio.NewReader(src)}
}

// NewStdinReader reads answers from os.Stdin.
func NewStdinReader() *LineReader {
	return NewLineReader(os.Stdin)
}

// ReadString reads up to and including delim.
func (r *LineReader) ReadString(delim byte) (string, error) {
	return r.buf.ReadString(delim)
}

// Answers replays canned answers, one per ReadString, then io.EOF.
// Each answer should carry its own delimiter.
type Answers []string

// ReadString pops the next answer. delim is ignored.
func (a *Answers) ReadString(delim byte) (string, error) {
	if len(*a) == 0 {
		return "", io.EOF
	}
	next := (*a)[0]
	*a = (*a)[1:]
	return next, nil
}

// Confirm reads one line from r and reports whether the answer is y or yes.
// Anything else, including an empty line or a read error, counts as no.
func Confirm(r Reader) bool {
	return ConfirmDefault(r, false)
}

// ConfirmDefault is Confirm with a choice for the empty answer. A read error
// with no text is always no.
func ConfirmDefault(r Reader, def bool) bool {
	answer, err := r.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.TrimSpace(strings.ToLower(answer)) {
	case "":
		return def
	case "y", "yes":
		return true
	default:
		return false
	}
}
