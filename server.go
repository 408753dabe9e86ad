package pathalerts

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/formatter"
	"github.com/theoremus-urban-solutions/path-alerts-gtfsrt/internal"
)

// RequestIDHeader carries the per-request id
const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// Server exposes a FeedCache over HTTP
type Server struct {
	cache          *FeedCache
	readIntervalMS int
	httpServer     *http.Server
}

// NewServer creates a server on port; readIntervalMS feeds the health valid_until
func NewServer(port int, cache *FeedCache, readIntervalMS int) *Server {
	s := &Server{cache: cache, readIntervalMS: readIntervalMS}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the routed handler wrapped with the request id middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/gtfsrt/alerts.pb", s.feedHandler(formatter.FormatProtobuf))
	mux.HandleFunc("/api/gtfsrt/alerts.json", s.feedHandler(formatter.FormatJSON))
	mux.HandleFunc("/api/gtfsrt/alerts.txt", s.feedHandler(formatter.FormatText))
	mux.HandleFunc("/api/gtfsrt/alerts", s.handleFeedQuery)
	return withRequestID(mux)
}

// Addr returns the listen address
func (s *Server) Addr() string { return s.httpServer.Addr }

// Start listens in the background
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.httpServer.Addr)
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then stops the refresher and the server
func HandleGracefulShutdown(s *Server, r *Refresher) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	if r != nil {
		r.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}

// RequestID returns the id assigned to the request carrying ctx
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		internal.Debugf("%s %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}
