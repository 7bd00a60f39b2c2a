package apicula

import "runtime"

// Logger is an optional logging interface for Unpack. It allows integration
// with any logging framework.
//
// Example with the standard log package:
//
//	type stdLogger struct{}
//	func (stdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (stdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (stdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	m, err := apicula.Unpack(db, bm, apicula.WithLogger(stdLogger{}))
//
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}

type config struct {
	workers int
	logger  Logger
}

func defaultConfig() config {
	return config{workers: 1}
}

// Option is a functional option for Unpack.
//
type Option func(*config)

// WithWorkers sets the number of goroutines decoding tiles. If less or equal
// to 0, the value of GOMAXPROCS will be used. The default is 1: tiles are
// decoded sequentially.
//
// The resulting netlist does not depend on the number of workers.
//
func WithWorkers(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(-1)
		}
		if n <= 0 {
			n = 1
		}
		c.workers = n
	}
}

// WithLogger sets a logger. Unpack always calls it from the calling goroutine.
//
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func (c *config) logDebug(msg string, kv ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, kv...)
	}
}

func (c *config) logInfo(msg string, kv ...interface{}) {
	if c.logger != nil {
		c.logger.Info(msg, kv...)
	}
}

func (c *config) logError(msg string, kv ...interface{}) {
	if c.logger != nil {
		c.logger.Error(msg, kv...)
	}
}
