package linguist

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	SetLogger(log.Logger)
}

// Logger returns the logger receiving the diagnostics of the package. It
// defaults to the global zerolog logger.
func Logger() *zerolog.Logger {
	return logger.Load()
}

// SetLogger replaces the package logger. It may be called while lookups
// are running.
func SetLogger(l zerolog.Logger) {
	l = l.With().Str("sys", "linguist").Logger()
	logger.Store(&l)
}

var reportedMisses sync.Map

// logMissingOnce warns about a failed lookup the first time it happens for
// a locale and id.
func logMissingOnce(locale, id string, err error) {
	if _, loaded := reportedMisses.LoadOrStore(locale+"\x00"+id, struct{}{}); loaded {
		return
	}
	Logger().Warn().Err(err).Str("locale", locale).Str("id", id).Msg("Translation lookup failed")
}
