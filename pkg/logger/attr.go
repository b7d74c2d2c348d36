package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under "errors" keyed by their argument
// position. All-nil input yields an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ClientID records a client identifier under "client_id".
// An empty id yields an empty Attr.
func ClientID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("client_id", id)
}

// Area records a training area name under "area".
func Area(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("area", name)
}

// TrainingGroup records a training group name under "group". It is not
// called Group because Group builds slog groups.
func TrainingGroup(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("group", name)
}

// Period records a reporting period under "period".
func Period(p fmt.Stringer) slog.Attr {
	if p == nil {
		return slog.Attr{}
	}
	return slog.String("period", p.String())
}

func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Attempt records a 1-based retry attempt number.
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Command records the CLI subcommand being run.
func Command(name string) slog.Attr {
	return slog.String("command", name)
}
