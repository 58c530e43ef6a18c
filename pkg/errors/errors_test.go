package errors

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestScrollErrorString(t *testing.T) {
	err := &ScrollError{
		Op:   "scrollview.New",
		Kind: KindConfig,
		Err:  &ConfigConflictError{Feature: "OnRefresh", Reason: "horizontal orientation"},
	}
	got := err.Error()
	want := "scrollview.New [config]: OnRefresh is not supported: horizontal orientation, OnRefresh will be ignored"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestScrollErrorWithTarget(t *testing.T) {
	err := &ScrollError{
		Op:     "scroll.Observer.Observe",
		Kind:   KindConfig,
		Target: "end-sentinel",
		Err:    &ConfigConflictError{Feature: "x", Reason: "y"},
	}
	if !strings.Contains(err.Error(), "target=end-sentinel") {
		t.Errorf("error string %q should contain target", err.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{ErrorKind(99), "unknown"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "scroll.Observer.dispatch"
	if got, want := err.Error(), "panic in scroll.Observer.dispatch: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReportConflict(t *testing.T) {
	var captured *ScrollError
	prev := SetHandler(&testHandler{onError: func(err *ScrollError) { captured = err }})
	defer SetHandler(prev)

	ReportConflict("scrollview.New", "OnEndReached", "horizontal orientation")

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Kind != KindConfig {
		t.Errorf("Kind = %v, want config", captured.Kind)
	}
	if captured.Target != "OnEndReached" {
		t.Errorf("Target = %q", captured.Target)
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	var conflict *ConfigConflictError
	if !As(captured, &conflict) {
		t.Error("expected ConfigConflictError in chain")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&ScrollError{
		Op:   "scrollview.New",
		Kind: KindConfig,
		Err:  &ConfigConflictError{Feature: "OnRefresh", Reason: "horizontal orientation"},
	})
	if !strings.HasPrefix(buf.String(), "[scroll advisory] scrollview.New: ") {
		t.Errorf("unexpected advisory line %q", buf.String())
	}

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Op: "op", Value: "v", StackTrace: "frames"})
	if !strings.Contains(buf.String(), "Stack trace:\nframes") {
		t.Errorf("verbose panic output missing stack: %q", buf.String())
	}
}

type testHandler struct {
	onError func(*ScrollError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *ScrollError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
