package tool

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var DefaultLogger = log.Default()

// InitLogger configures DefaultLogger. When logDir is set, output is also
// appended to a per-day file inside it.
func InitLogger(logDir string) error {
	DefaultLogger.SetTimeFormat("2006-01-02 15:04:05")
	DefaultLogger.SetReportTimestamp(true)
	if logDir == "" {
		DefaultLogger.SetOutput(os.Stdout)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}
	logFile := filepath.Join(logDir, time.Now().Format("2006-01-02.log"))
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	DefaultLogger.SetOutput(io.MultiWriter(os.Stdout, f))
	return nil
}

// SetLogMode maps a CLI log mode onto a level: dev, prod or none.
func SetLogMode(mode string) {
	switch strings.ToLower(mode) {
	case "", "dev":
		DefaultLogger.SetLevel(log.DebugLevel)
	case "prod":
		DefaultLogger.SetLevel(log.InfoLevel)
	case "none":
		DefaultLogger.SetLevel(log.FatalLevel)
	default:
		DefaultLogger.Warnf("Unknown log mode %q, using debug level", mode)
		DefaultLogger.SetLevel(log.DebugLevel)
	}
}
