// Package logging holds the process-wide logger.
package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger used by the helpers below.
var L = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "fincalc",
})

// Configure sets the level ("debug", "info", "warn", "error") and the
// format ("text" or "json") of L. An unknown level keeps the current one.
func Configure(level, format string) error {
	if level != "" {
		lvl, err := clog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		L.SetLevel(lvl)
	}

	switch strings.ToLower(format) {
	case "", "text":
		L.SetFormatter(clog.TextFormatter)
	case "json":
		L.SetFormatter(clog.JSONFormatter)
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}

// SetOutput redirects L, mostly for tests.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// StandardLog adapts L for libraries that expect a *log.Logger; every line
// is written at info level.
func StandardLog() *stdlog.Logger {
	return L.StandardLog(clog.StandardLogOptions{ForceLevel: clog.InfoLevel})
}

func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
