package diagnostics

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/growthlab/growthnav/internal/model"
	"github.com/growthlab/growthnav/internal/nav"
)

// Kind classifies a reported failure.
type Kind string

const (
	KindConfiguration         Kind = "configuration"
	KindInvalidSection        Kind = "invalid_section"
	KindNavigationUnavailable Kind = "navigation_unavailable"
	KindOther                 Kind = "other"
)

// Classify maps a panel error onto its kind.
func Classify(err error) Kind {
	var (
		cfgErr      *nav.ConfigurationError
		invalid     *nav.InvalidSectionError
		unavailable *nav.NavigationUnavailableError
	)
	switch {
	case errors.As(err, &cfgErr):
		return KindConfiguration
	case errors.As(err, &invalid):
		return KindInvalidSection
	case errors.As(err, &unavailable):
		return KindNavigationUnavailable
	default:
		return KindOther
	}
}

// LogReporter writes every report as a structured warning.
type LogReporter struct {
	logger *zap.Logger
}

func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogReporter{logger: logger.Named("diagnostics")}
}

func (r *LogReporter) Report(err error) {
	if err == nil {
		return
	}
	fields := []zap.Field{zap.String("kind", string(Classify(err))), zap.Error(err)}

	var invalid *nav.InvalidSectionError
	var unavailable *nav.NavigationUnavailableError
	switch {
	case errors.As(err, &invalid):
		fields = append(fields, zap.String("section", string(invalid.ID)))
	case errors.As(err, &unavailable):
		fields = append(fields, zap.String("url", unavailable.URL))
	}

	r.logger.Warn("panel request not fulfilled", fields...)
}

// Report is one recorded failure.
type Report struct {
	Kind Kind
	Err  error
	At   time.Time
}

// Recorder keeps the most recent reports in memory. The terminal host shows
// the latest one in its status line.
type Recorder struct {
	mu      sync.Mutex
	limit   int
	reports []Report
	now     func() time.Time
}

// NewRecorder keeps up to limit reports (minimum 1).
func NewRecorder(limit int) *Recorder {
	if limit < 1 {
		limit = 1
	}
	return &Recorder{limit: limit, now: time.Now}
}

func (r *Recorder) Report(err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Report{Kind: Classify(err), Err: err, At: r.now()})
	if over := len(r.reports) - r.limit; over > 0 {
		r.reports = append(r.reports[:0], r.reports[over:]...)
	}
}

// Reports returns a copy of the retained reports, oldest first.
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Last returns the newest report.
func (r *Recorder) Last() (Report, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.reports) == 0 {
		return Report{}, false
	}
	return r.reports[len(r.reports)-1], true
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// Multi fans a report out to several reporters.
type Multi []model.Reporter

func (m Multi) Report(err error) {
	for _, r := range m {
		if r != nil {
			r.Report(err)
		}
	}
}
