package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init configures the process-wide logger. Development gets a human readable
// text handler at debug level, everything else structured JSON.
func Init(environment string) {
	var handler slog.Handler

	if environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func Info(msg string, args ...any) {
	std().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	std().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	std().Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	std().Error(msg, normalize(args)...)
	os.Exit(1)
}

func std() *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}

// normalize lets call sites pass either proper key/value pairs or loose
// values (typically a bare error) without tripping slog's pairing rules.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		paired := true
		for i := 0; i < len(args); i += 2 {
			if _, ok := args[i].(string); !ok {
				paired = false
				break
			}
		}
		if paired {
			return args
		}
	}

	out := make([]any, 0, len(args))
	for _, a := range args {
		if err, ok := a.(error); ok {
			out = append(out, slog.Any("error", err))
			continue
		}
		out = append(out, slog.Any("detail", a))
	}
	return out
}
