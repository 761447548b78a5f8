package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
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

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the reduction run identifier under the key "run_id".
func RunID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("run_id", id)
}

// Stage records the pipeline stage name under the key "stage".
func Stage(name string) slog.Attr {
	return slog.String("stage", name)
}

// Exposures records the file names of an exposure subset under "exposures".
func Exposures(files []string) slog.Attr {
	return slog.Any("exposures", files)
}

// Subset records the 1-based subset position and the subset count.
func Subset(index, total int) slog.Attr {
	return Group("subset", slog.Int("index", index), slog.Int("total", total))
}

// Caller records the name of the routine that validated a parameter.
func Caller(name string) slog.Attr {
	return slog.String("caller", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
