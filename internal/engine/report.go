package engine

import (
	"fmt"

	"github.com/v0xg/stepwise/internal/action"
)

// Status is the outcome classification of one declared step.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Result records the outcome of exactly one executed-or-skipped step.
type Result struct {
	Index    int         `json:"index"`
	Type     action.Kind `json:"type"`
	Status   Status      `json:"status"`
	Duration int64       `json:"duration"` // ms of evaluation + execution
	Message  string      `json:"message"`
	Selector string      `json:"selector,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// Report aggregates the ordered results of a run. Counters are maintained
// only through Add, so they can never drift from the details list.
type Report struct {
	Executed   int      `json:"executed"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Skipped    int      `json:"skipped"`
	Details    []Result `json:"details"`
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{Details: []Result{}}
}

// Add appends a result and folds it into the counters.
func (r *Report) Add(res Result) {
	r.Details = append(r.Details, res)
	switch res.Status {
	case StatusSuccess:
		r.Successful++
		r.Executed++
	case StatusFailed:
		r.Failed++
		r.Executed++
	case StatusSkipped:
		r.Skipped++
	}
}

// Summary renders the counters as a one-line digest.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d executed, %d successful, %d failed, %d skipped",
		r.Executed, r.Successful, r.Failed, r.Skipped)
}
