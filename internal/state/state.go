package state

import (
	"time"

	"github.com/rook-computer/iconbanner/internal/errors"
)

type Phase int

const (
	READY Phase = iota
	RENDERING
	DONE
	ERROR
	CANCELLED
)

func (p Phase) String() string {
	switch p {
	case READY:
		return "ready"
	case RENDERING:
		return "rendering"
	case DONE:
		return "done"
	case ERROR:
		return "error"
	case CANCELLED:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Outcome is the result of one input/output pair.
type Outcome struct {
	Index    int
	Input    string
	Output   string
	Font     string
	FontSize float64
	Duration time.Duration
	Err      error
}

// Summary collects the outcomes of a run. It is written by a single goroutine.
type Summary struct {
	Phase    Phase
	Outcomes []Outcome
}

func NewSummary() *Summary {
	return &Summary{Phase: READY}
}

func (s *Summary) SetPhase(phase Phase) {
	s.Phase = phase
}

func (s *Summary) Record(outcome Outcome) {
	s.Outcomes = append(s.Outcomes, outcome)
}

// Rendered returns the number of pairs written successfully.
func (s *Summary) Rendered() int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the outcomes that carry an error.
func (s *Summary) Failed() []Outcome {
	var failed []Outcome
	for _, o := range s.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// FailureCodes counts failures per error code.
func (s *Summary) FailureCodes() map[errors.ErrorCode]int {
	codes := map[errors.ErrorCode]int{}
	for _, o := range s.Failed() {
		codes[errors.CodeOf(o.Err)]++
	}
	return codes
}
