package lockwatch

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultGrace is how long an acquisition may block before its
	// watchdog reports a potential deadlock.
	DefaultGrace = 3 * time.Second

	// DefaultPoll is the sleep between watchdog checks of the success flag.
	DefaultPoll = 10 * time.Millisecond

	// EnvGrace and EnvPoll override the defaults process-wide.
	EnvGrace = "LOCKWATCH_GRACE"
	EnvPoll  = "LOCKWATCH_POLL"
)

// The package-level logger carries watchdog headline events and package
// warnings. Stack blocks go to the configured writer, not through the
// logger. Held behind an atomic pointer: watchdogs and cleanup guards may
// read it while SetDefaultLogger swaps it.
var defaultLoggerPtr atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	defaultLoggerPtr.Store(&l)
}

// SetDefaultLogger replaces the package-level logger used by locks that
// were not given one via WithLogger. Safe to call at any time, from any
// goroutine; locks built earlier keep the logger they were built with.
func SetDefaultLogger(l zerolog.Logger) {
	defaultLoggerPtr.Store(&l)
}

func defaultLogger() zerolog.Logger {
	return *defaultLoggerPtr.Load()
}

type config struct {
	name   string
	grace  time.Duration
	poll   time.Duration
	logger zerolog.Logger
	out    io.Writer
}

func defaultLockConfig() config {
	return config{
		name:   "rwlock-" + uuid.NewString()[:8],
		grace:  GetDurationEnvOrDefault(EnvGrace, DefaultGrace),
		poll:   GetDurationEnvOrDefault(EnvPoll, DefaultPoll),
		logger: defaultLogger(),
		out:    os.Stderr,
	}
}

// Option configures a lock at construction time.
type Option func(*config)

// WithName sets the lock's registry name. Unnamed locks get a generated one.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithGrace sets how long an acquisition may block before the watchdog
// reports. Non-positive values keep the current setting.
func WithGrace(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.grace = d
		}
	}
}

// WithPoll sets the watchdog's polling interval.
func WithPoll(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.poll = d
		}
	}
}

// WithLogger routes the lock's headline diagnostics through l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithWriter sets the destination for multi-line stack reports.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.out = w
		}
	}
}
