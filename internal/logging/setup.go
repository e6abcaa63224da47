package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sungminna/exchange-credentials/internal/config"
)

// Setup configures the global logrus logger from the log section.
// Output goes to stdout unless w is non-nil.
func Setup(cfg config.LogConfig, w io.Writer) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log.SetLevel(level)

	switch cfg.Format {
	case "text":
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	}

	if w == nil {
		w = os.Stdout
	}
	log.SetOutput(w)
	return nil
}
