package organizer

// Outcome is the terminal state of one processed file.
type Outcome string

const (
	OutcomeMoved   Outcome = "moved"
	OutcomeRenamed Outcome = "renamed"
	OutcomeDeleted Outcome = "deleted"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// ReasonNameConflict is the rename reason when the destination was already
// occupied and a numbered suffix was allocated.
const ReasonNameConflict = "name conflict"

// Result records what happened to one file. Never mutated after creation.
type Result struct {
	Outcome Outcome
	Entry   FileEntry
	// Destination is set for moved/renamed outcomes.
	Destination string
	// Category the file was (or would have been) filed under.
	Category string
	// Reason carries skip reasons and rename causes.
	Reason string
	// Err is set for failed outcomes only.
	Err error
}

// Summary aggregates outcome counts for one session run.
type Summary struct {
	Total   int
	Moved   int
	Renamed int
	Deleted int
	Skipped int
	Failed  int
}

func (s *Summary) add(outcome Outcome) {
	s.Total++
	switch outcome {
	case OutcomeMoved:
		s.Moved++
	case OutcomeRenamed:
		s.Renamed++
	case OutcomeDeleted:
		s.Deleted++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
}

// Summarize tallies a result slice into a Summary.
func Summarize(results []Result) Summary {
	var summary Summary
	for _, result := range results {
		summary.add(result.Outcome)
	}
	return summary
}
