package logs

import logging "github.com/ipfs/go-log/v2"

// SetAllLoggers sets the level of every logger while keeping the chatty
// datastore internals quieter.
func SetAllLoggers(level logging.LogLevel) {
	logging.SetAllLoggers(level)
	_ = logging.SetLogLevel("badger", "WARN")
	_ = logging.SetLogLevel("fx", "WARN")
}
