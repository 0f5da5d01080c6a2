package app

import (
	"fmt"
	"strings"

	"github.com/go-stack/stack"
	"github.com/kataras/golog"
)

var (
	logger       = golog.Child("[keycast]")
	hookLogger   = golog.Child("[hook]")
	renderLogger = golog.Child("[render]")
	replayLogger = golog.Child("[replay]")
)

// SetupLogging applies the configured level to every logger.
func SetupLogging(level string) error {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "debug", "info", "warn", "error", "disable":
	default:
		return fmt.Errorf("unsupported log level %q", level)
	}
	golog.SetLevel(level)
	// Child loggers keep their own level.
	for _, l := range []*golog.Logger{logger, hookLogger, renderLogger, replayLogger, golog.Child("[presenter]")} {
		l.SetLevel(level)
	}
	return nil
}

// recoverFrame logs a panic raised while handling one frame, with the stack
// of the panicking goroutine, and lets the caller carry on.
func recoverFrame(what string) {
	if r := recover(); r != nil {
		trace := stack.Trace().TrimRuntime()
		logger.Errorf("%s panicked: %v\n%+v", what, r, trace)
	}
}
