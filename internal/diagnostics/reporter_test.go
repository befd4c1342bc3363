package diagnostics

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/growthlab/growthnav/internal/nav"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want Kind
	}{
		{&nav.ConfigurationError{Reason: "x"}, KindConfiguration},
		{&nav.InvalidSectionError{ID: "x"}, KindInvalidSection},
		{&nav.NavigationUnavailableError{URL: "u", Err: nav.ErrNoBrowsingContext}, KindNavigationUnavailable},
		{fmt.Errorf("wrapped: %w", &nav.InvalidSectionError{ID: "x"}), KindInvalidSection},
		{errors.New("boom"), KindOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.err); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestLogReporter_WritesStructuredWarning(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	r := NewLogReporter(zap.New(core))

	r.Report(&nav.NavigationUnavailableError{URL: "https://example.com", Err: nav.ErrNoBrowsingContext})
	r.Report(&nav.InvalidSectionError{ID: "settings"})
	r.Report(nil)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("log entries = %d, want 2", len(entries))
	}
	first := entries[0].ContextMap()
	if first["kind"] != string(KindNavigationUnavailable) || first["url"] != "https://example.com" {
		t.Errorf("first entry fields = %v", first)
	}
	second := entries[1].ContextMap()
	if second["kind"] != string(KindInvalidSection) || second["section"] != "settings" {
		t.Errorf("second entry fields = %v", second)
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entries[0].Level)
	}
	if entries[0].LoggerName != "diagnostics" {
		t.Errorf("logger name = %q", entries[0].LoggerName)
	}
}

func TestRecorder_KeepsNewest(t *testing.T) {
	t.Parallel()

	r := NewRecorder(2)
	if _, ok := r.Last(); ok {
		t.Fatal("empty recorder should have no last report")
	}

	r.Report(&nav.InvalidSectionError{ID: "a"})
	r.Report(&nav.InvalidSectionError{ID: "b"})
	r.Report(&nav.NavigationUnavailableError{URL: "u"})

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	reports := r.Reports()
	var invalid *nav.InvalidSectionError
	if !errors.As(reports[0].Err, &invalid) || invalid.ID != "b" {
		t.Errorf("oldest retained = %v, want section b", reports[0].Err)
	}
	last, _ := r.Last()
	if last.Kind != KindNavigationUnavailable {
		t.Errorf("last kind = %q", last.Kind)
	}
}

func TestMulti_FansOut(t *testing.T) {
	t.Parallel()

	a, b := NewRecorder(5), NewRecorder(5)
	Multi{a, nil, b}.Report(errors.New("x"))
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatalf("lens = %d/%d, want 1/1", a.Len(), b.Len())
	}
}

func TestNewLogger_WritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "growthnav.log")
	logger, err := NewLogger("debug", path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel, " WARN ": zapcore.WarnLevel, "warning": zapcore.WarnLevel,
		"error": zapcore.ErrorLevel, "": zapcore.InfoLevel, "verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
