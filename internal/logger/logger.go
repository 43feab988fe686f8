// Package logger holds the process-wide logger used by vocab and the
// vocabtrie command. It discards everything until SetLogger is called.
package logger

import (
	"io"
	"log"
)

// StdLogger is satisfied by *log.Logger.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// Logger is the current logger.
var Logger StdLogger = log.New(io.Discard, "[vocabtrie] ", log.LstdFlags)

// SetLogger replaces Logger. A nil l restores the discarding logger.
func SetLogger(l StdLogger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	Logger = l
}
