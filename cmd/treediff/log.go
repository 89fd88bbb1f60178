package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
)

// initLogger sets up apex with a plain handler and a log level taken from the
// TREEDIFF_LOG env variable (debug, info, warn, error; default warn).
func initLogger() {
	level := log.WarnLevel
	switch strings.ToLower(os.Getenv("TREEDIFF_LOG")) {
	case "debug":
		level = log.DebugLevel
	case "info":
		level = log.InfoLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	log.SetHandler(&stderrHandler{})
	log.SetLevel(level)
}

// stderrHandler writes one line per entry to stderr
type stderrHandler struct{}

// HandleLog implements the log.Handler interface
func (h *stderrHandler) HandleLog(e *log.Entry) error {
	letter := "?"
	switch e.Level {
	case log.DebugLevel:
		letter = "D"
	case log.InfoLevel:
		letter = "I"
	case log.WarnLevel:
		letter = "W"
	case log.ErrorLevel:
		letter = "E"
	case log.FatalLevel:
		letter = "F"
	}

	_, err := fmt.Fprintf(os.Stderr, "%s %s\n", letter, e.Message)
	return err
}
