package formatter

import (
	"encoding/json"
	"io"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/runner"
)

// Event is one line of JSON output.
type Event struct {
	Type     string   `json:"type"`
	RunID    string   `json:"run_id,omitempty"`
	Name     string   `json:"name,omitempty"`
	FullName string   `json:"full_name,omitempty"`
	Level    int      `json:"level"`
	Status   string   `json:"status,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Error    string   `json:"error,omitempty"`
	Duration float64  `json:"duration_ms,omitempty"`

	Summary *SummaryEvent `json:"summary,omitempty"`
}

// SummaryEvent carries the totals of a finished run.
type SummaryEvent struct {
	Total           int      `json:"total"`
	Passed          int      `json:"passed"`
	Failed          int      `json:"failed"`
	Pending         int      `json:"pending"`
	Skipped         int      `json:"skipped"`
	ContextFailures []string `json:"context_failures,omitempty"`
	Success         bool     `json:"success"`
}

// Event types.
const (
	EventContext = "context"
	EventExample = "example"
	EventSummary = "summary"
)

// JSON writes newline-delimited JSON events.
type JSON struct {
	enc   *json.Encoder
	runID string
	err   error
}

// NewJSON creates a JSON formatter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// SetRunID stamps every following event with id.
func (j *JSON) SetRunID(id string) {
	j.runID = id
}

// Err returns the first write error, if any.
func (j *JSON) Err() error {
	return j.err
}

func (j *JSON) emit(ev Event) {
	if j.err != nil {
		return
	}
	ev.RunID = j.runID
	j.err = j.enc.Encode(ev)
}

// WriteContext emits a context event.
func (j *JSON) WriteContext(c *domain.Context) {
	j.emit(Event{
		Type:     EventContext,
		Name:     c.Name,
		FullName: c.FullName(),
		Level:    c.Level,
		Tags:     c.Tags,
	})
}

// WriteExample emits an example event.
func (j *JSON) WriteExample(e *domain.Example, level int) {
	ev := Event{
		Type:     EventExample,
		Name:     e.Name,
		FullName: e.FullName(),
		Level:    level,
		Status:   string(e.Status()),
		Tags:     e.Tags,
		Duration: float64(e.Duration) / float64(time.Millisecond),
	}
	if e.Failed() {
		ev.Error = e.Err.Error()
	}
	j.emit(ev)
}

// WriteSummary emits the summary event.
func (j *JSON) WriteSummary(r *runner.Report) error {
	s := &SummaryEvent{
		Total:   r.Total,
		Passed:  r.Passed,
		Failed:  r.Failed,
		Pending: r.Pending,
		Skipped: r.Skipped,
		Success: r.Success(),
	}
	for _, c := range r.ContextFailures {
		s.ContextFailures = append(s.ContextFailures, c.FullName()+": "+c.Err.Error())
	}
	j.emit(Event{
		Type:     EventSummary,
		Duration: float64(r.Duration) / float64(time.Millisecond),
		Summary:  s,
	})
	return j.err
}
