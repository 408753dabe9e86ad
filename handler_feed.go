package pathalerts

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/formatter"
)

// feedHandler serves the cached feed in a fixed format
func (s *Server) feedHandler(f formatter.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeFeed(w, r, f)
	}
}

// handleFeedQuery serves the cached feed in the format named by ?format=
func (s *Server) handleFeedQuery(w http.ResponseWriter, r *http.Request) {
	f, err := parseFormatParam(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeFeed(w, r, f)
}

func (s *Server) writeFeed(w http.ResponseWriter, r *http.Request, f formatter.Format) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	buf, err := s.cache.Get(f)
	if err != nil {
		if errors.Is(err, ErrNoFeed) {
			w.Header().Set("Retry-After", "5")
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		log.Printf("feed %s: %v", f, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", formatter.ContentType(f))
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))
	if lm := s.cache.LastRefresh(); !lm.IsZero() {
		w.Header().Set("Last-Modified", lm.Format(http.TimeFormat))
	}
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(buildErrorPayload(msg))
}
