package organizer

// Action is the per-file choice applied by the executor.
type Action string

const (
	// ActionAuto moves the file to its classified category folder.
	ActionAuto Action = "auto"
	// ActionManual moves the file to an operator-chosen category folder.
	ActionManual Action = "manual"
	// ActionDelete removes the file.
	ActionDelete Action = "delete"
	// ActionSkip leaves the file untouched.
	ActionSkip Action = "skip"
)

// Decision pairs an action with the manual category override (only
// meaningful for ActionManual; empty falls back to the classified one).
type Decision struct {
	Action   Action
	Category string
}

// DecisionProvider supplies a Decision per scanned file. Automatic mode
// uses AutoProvider; interactive mode is backed by a terminal prompt, and
// tests use fixtures.
type DecisionProvider interface {
	Decide(entry FileEntry) (Decision, error)
}

// ProviderFunc adapts a function to the DecisionProvider interface.
type ProviderFunc func(entry FileEntry) (Decision, error)

func (f ProviderFunc) Decide(entry FileEntry) (Decision, error) {
	return f(entry)
}

// AutoProvider answers ActionAuto for every file.
func AutoProvider() DecisionProvider {
	return ProviderFunc(func(FileEntry) (Decision, error) {
		return Decision{Action: ActionAuto}, nil
	})
}
