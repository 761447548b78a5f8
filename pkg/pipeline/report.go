package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/spextract/pkg/progress"
	"github.com/dmitrymomot/spextract/pkg/store"
)

// ReportPrefix is the storage prefix run reports are written under.
const ReportPrefix = "runs"

// Status is the outcome of a run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCanceled  Status = "canceled"
)

// Report summarizes one Run.
type Report struct {
	RunID         string         `yaml:"run_id"`
	ReductionMode string         `yaml:"reduction_mode"`
	FileReadMode  string         `yaml:"file_read_mode"`
	Status        Status         `yaml:"status"`
	Error         string         `yaml:"error,omitempty"`
	StartedAt     time.Time      `yaml:"started_at"`
	FinishedAt    time.Time      `yaml:"finished_at"`
	Subsets       []SubsetReport `yaml:"subsets"`

	// Location is where Save wrote the report.
	Location string `yaml:"-"`
}

type SubsetReport struct {
	Index  int           `yaml:"index"`
	Files  []string      `yaml:"files"`
	Stages []StageReport `yaml:"stages"`
}

type StageReport struct {
	Stage    string        `yaml:"stage"`
	Duration time.Duration `yaml:"duration"`
}

func (r *Report) finish(at time.Time, err error) {
	r.FinishedAt = at
	switch {
	case err == nil:
		r.Status = StatusCompleted
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		r.Status = StatusCanceled
		r.Error = err.Error()
	default:
		r.Status = StatusFailed
		r.Error = err.Error()
	}
}

// Completed reports how many subsets ran all seven stages.
func (r *Report) Completed() int {
	n := 0
	for _, s := range r.Subsets {
		if len(s.Stages) == len(progress.Events) {
			n++
		}
	}
	return n
}

// Encode renders the report as YAML.
func (r *Report) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encode run report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode run report: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the report to ReportKey(r.RunID) and records the location.
func (r *Report) Save(ctx context.Context, s store.Storage) error {
	data, err := r.Encode()
	if err != nil {
		return errors.Join(ErrReportNotSaved, err)
	}
	obj, err := s.Put(ctx, ReportKey(r.RunID), bytes.NewReader(data), "application/yaml")
	if err != nil {
		return errors.Join(ErrReportNotSaved, err)
	}
	r.Location = obj.Location
	return nil
}

// DecodeReport parses a YAML report.
func DecodeReport(data []byte) (*Report, error) {
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode run report: %w", err)
	}
	return &r, nil
}

// ReportKey returns the storage key for a run id.
func ReportKey(runID string) string {
	return ReportPrefix + "/" + runID + ".yaml"
}

// LoadReport reads a saved report by run id.
func LoadReport(ctx context.Context, s store.Storage, runID string) (*Report, error) {
	data, err := s.Get(ctx, ReportKey(runID))
	if err != nil {
		if errors.Is(err, store.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, runID)
		}
		return nil, err
	}
	return DecodeReport(data)
}

// ListReports returns the run ids of all saved reports, sorted.
func ListReports(ctx context.Context, s store.Storage) ([]string, error) {
	objs, err := s.List(ctx, ReportPrefix)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(objs))
	for _, o := range objs {
		name := strings.TrimPrefix(o.Key, ReportPrefix+"/")
		if id, ok := strings.CutSuffix(name, ".yaml"); ok && id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
