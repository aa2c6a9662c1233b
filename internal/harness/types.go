package harness

import "fmt"

// TraceLine records one evaluated case.
type TraceLine struct {
	Seq     int64  `json:"seq"`
	Case    string `json:"case"`
	Left    string `json:"left"`
	Op      string `json:"op"`
	Right   string `json:"right"`
	Expect  string `json:"expect"`
	Outcome string `json:"outcome"`
	Pass    bool   `json:"pass"`
}

// String renders the line as "left op right => outcome".
func (l TraceLine) String() string {
	return fmt.Sprintf("%s %s %s => %s", l.Left, l.Op, l.Right, l.Outcome)
}

// Result is the outcome of a scenario run.
type Result struct {
	// RunID identifies the run (UUIDv7 unless a fixed generator is used).
	RunID string `json:"run_id"`

	Scenario string `json:"scenario"`

	// Profile is the comparison context the run used, in its String form.
	Profile string `json:"profile"`

	// Pass is true if every case produced its expected outcome.
	Pass bool `json:"pass"`

	// Trace contains one line per case, in scenario order.
	Trace []TraceLine `json:"trace"`

	// Errors contains one message per failed case.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(runID, scenario string) *Result {
	return &Result{
		RunID:    runID,
		Scenario: scenario,
		Pass:     true,
		Trace:    []TraceLine{},
		Errors:   []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Failures counts failed trace lines.
func (r *Result) Failures() int {
	n := 0
	for _, l := range r.Trace {
		if !l.Pass {
			n++
		}
	}
	return n
}
