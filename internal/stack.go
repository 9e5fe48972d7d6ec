package internal

import tt "github.com/gnolang/bracecheck/internal/types"

// braceStack holds the opening braces still waiting for a match.
type braceStack struct {
	markers []tt.BraceMarker
}

func (s *braceStack) push(line, column int) {
	s.markers = append(s.markers, tt.BraceMarker{Line: line, Column: column, Kind: tt.BraceKindOpen})
}

// pop discards the most recent marker. It reports false when the stack
// is already empty.
func (s *braceStack) pop() bool {
	if len(s.markers) == 0 {
		return false
	}
	s.markers = s.markers[:len(s.markers)-1]
	return true
}

func (s *braceStack) len() int { return len(s.markers) }

// remaining returns the unmatched markers in encounter order.
func (s *braceStack) remaining() []tt.BraceMarker {
	return s.markers
}
