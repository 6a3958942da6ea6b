package telemetry

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(logger.Info(), msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(logger.Error(), msg, fields)
}

func write(ev *zerolog.Event, msg string, fields map[string]any) {
	ev.Fields(fields).Msg(msg)
}

// Preview truncates content for log output so raw documents never land in
// logs wholesale.
func Preview(content string) string {
	const maxLen = 120
	if len(content) <= maxLen {
		return content
	}
	return content[:maxLen] + "..."
}
