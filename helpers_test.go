package pathalerts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/converter"
)

var testNow = time.Date(2025, 11, 26, 8, 0, 0, 0, time.UTC)

var errUpstream = errors.New("upstream unavailable")

// stubSource returns queued bulletins, then repeats the last one
type stubSource struct {
	mu    sync.Mutex
	pages []string
	err   error
	calls int
}

func (s *stubSource) FetchContent(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if len(s.pages) == 0 {
		return "", nil
	}
	page := s.pages[0]
	if len(s.pages) > 1 {
		s.pages = s.pages[1:]
	}
	return page, nil
}

func (s *stubSource) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *stubSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func stationBlock(date, clock, text string) string {
	return fmt.Sprintf(`<div class="station"><div class="stationName"><table><tr>`+
		`<td><strong><span>%s</span></strong></td>`+
		`<td><strong><span>%s</span></strong></td>`+
		`</tr></table></div><span class="alertText">%s</span></div>`, date, clock, text)
}

func bulletin(blocks ...string) string {
	return "<html><body>" + strings.Join(blocks, "") + "</body></html>"
}

func fixedOptions() converter.Options {
	return converter.Options{Now: func() time.Time { return testNow }}
}
