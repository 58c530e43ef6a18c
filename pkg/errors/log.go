package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination. Defaults to os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a ScrollError. Configuration errors are logged as
// advisories since they never stop the engine.
func (h *LogHandler) HandleError(err *ScrollError) {
	if err == nil {
		return
	}
	w := h.out()
	label := "scroll error"
	if err.Kind == KindConfig {
		label = "scroll advisory"
	}
	if h.Verbose {
		fmt.Fprintf(w, "[%s] %s [%s]", label, err.Op, err.Kind)
		if err.Target != "" {
			fmt.Fprintf(w, " target=%s", err.Target)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[%s] %s: %v\n", label, err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[scroll panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[scroll panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
