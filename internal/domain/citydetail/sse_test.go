package citydetail

import (
	"bufio"
	"io"
	"strings"
)

// sseScanner is a minimal Server-Sent Events reader for tests: one call to
// next advances to the following event/data pair.
type sseScanner struct {
	scanner *bufio.Scanner
	event   string
	data    string
}

func newSSEScanner(r io.Reader) *sseScanner {
	return &sseScanner{scanner: bufio.NewScanner(r)}
}

func (s *sseScanner) next() bool {
	s.event, s.data = "", ""
	for s.scanner.Scan() {
		line := s.scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			s.event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			s.data = strings.TrimPrefix(line, "data: ")
		case line == "" && s.event != "":
			return true
		}
	}
	return false
}
