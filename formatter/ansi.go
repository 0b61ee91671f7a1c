package formatter

import (
	"github.com/charmbracelet/x/ansi"
)

// LastEscape returns the last complete escape sequence in s, or "" if s
// has none. String sequences such as OSC hyperlinks only count once
// their BEL or ST terminator has been seen.
func LastEscape(s string) string {
	var (
		last  string
		state byte
	)
	for len(s) > 0 {
		seq, width, n, newState := ansi.DecodeSequence(s, state, nil)
		if n == 0 {
			break
		}
		if width == 0 && newState == ansi.NormalState && isCompleteSequence(seq) {
			last = seq
		}
		state = newState
		s = s[n:]
	}
	return last
}

func isCompleteSequence(seq string) bool {
	if len(seq) < 2 {
		return false
	}
	switch {
	case ansi.HasOscPrefix(seq), ansi.HasDcsPrefix(seq), ansi.HasApcPrefix(seq),
		ansi.HasSosPrefix(seq), ansi.HasPmPrefix(seq):
		return ansi.HasSuffix(seq, "\x07") || ansi.HasSuffix(seq, "\x1b\\") || ansi.HasSuffix(seq, "\x9c")
	}
	return seq[0] == ansi.ESC || seq[0] == ansi.CSI
}

// ContinueEscapes returns a copy of lines where every line after the
// first starts with the most recent escape sequence seen on an earlier
// line. The carried sequence only changes when the previous line has
// one of its own.
func ContinueEscapes(lines []string) []string {
	out := make([]string, len(lines))
	carried := ""
	for i, line := range lines {
		if i > 0 {
			if esc := LastEscape(lines[i-1]); esc != "" {
				carried = esc
			}
			line = carried + line
		}
		out[i] = line
	}
	return out
}

// Strip removes all ANSI/VT control sequences from s
func Strip(s string) string {
	return ansi.Strip(s)
}
