package scanner

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strings"
)

const initialBufSize = 64 * 1024

// Scanner reads text line by line. \n, \r\n and a lone \r all end a
// line, and each terminator is returned as a single \n. Invalid UTF-8
// bytes are dropped from the returned text.
type Scanner struct {
	sc   *bufio.Scanner
	text string
	line int
}

func New(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialBufSize), math.MaxInt)
	sc.Split(ScanUniversalLines)
	return &Scanner{sc: sc}
}

// Scan advances to the next line. It returns false at EOF or on error.
func (s *Scanner) Scan() bool {
	if !s.sc.Scan() {
		return false
	}
	s.line++
	s.text = strings.ToValidUTF8(s.sc.Text(), "")
	return true
}

// Text returns the current line, terminator included.
func (s *Scanner) Text() string { return s.text }

// Line returns the 1-indexed number of the current line.
func (s *Scanner) Line() int { return s.line }

func (s *Scanner) Err() error { return s.sc.Err() }

// ScanUniversalLines is a bufio.SplitFunc that splits on \n, \r\n and \r.
// The returned token always ends in \n unless it is the final,
// unterminated line.
func ScanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	i := bytes.IndexAny(data, "\r\n")
	if i < 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}

	if data[i] == '\n' {
		return i + 1, data[:i+1], nil
	}

	// \r: need one more byte to tell \r\n from a lone \r
	if i+1 == len(data) && !atEOF {
		return 0, nil, nil
	}
	line := terminate(data[:i])
	if i+1 < len(data) && data[i+1] == '\n' {
		return i + 2, line, nil
	}
	return i + 1, line, nil
}

func terminate(b []byte) []byte {
	out := make([]byte, len(b)+1)
	copy(out, b)
	out[len(b)] = '\n'
	return out
}
