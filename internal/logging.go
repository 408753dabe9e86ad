package internal

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var verbose atomic.Bool

// InitLogging routes the standard logger to w (stdout when nil) with
// microsecond timestamps. Debugf output is only written when v is set.
func InitLogging(w io.Writer, v bool) {
	if w == nil {
		w = os.Stdout
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	verbose.Store(v)
}

// Verbose reports whether debug logging is enabled
func Verbose() bool { return verbose.Load() }

// Debugf logs through the standard logger when verbose logging is enabled
func Debugf(format string, args ...any) {
	if verbose.Load() {
		log.Printf("debug: "+format, args...)
	}
}
