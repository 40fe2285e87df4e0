package organizer

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jensettl/folder-organizer/internal/fileutil"
	"github.com/jensettl/folder-organizer/internal/logging"
)

// Executor applies one decision to one file. Under dry-run it computes the
// same outcome against real filesystem state without mutating anything, so
// a preview matches what a live run would do at that instant.
type Executor struct {
	dryRun bool
	logger *slog.Logger
}

// NewExecutor constructs an executor. A nil logger is replaced with a nop.
func NewExecutor(dryRun bool, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Executor{dryRun: dryRun, logger: logger.With(logging.String(logging.FieldComponent, "executor"))}
}

// Apply executes decision for entry against destDir. Every error terminates
// in a Failed result; Apply never returns an error to the caller so the
// session continues with the remaining files.
func (e *Executor) Apply(entry FileEntry, decision Decision, categoryName, destDir string) Result {
	switch decision.Action {
	case ActionSkip:
		return Result{Outcome: OutcomeSkipped, Entry: entry, Category: categoryName, Reason: "user choice"}
	case ActionDelete:
		return e.delete(entry, categoryName)
	default:
		return e.move(entry, categoryName, destDir)
	}
}

func (e *Executor) delete(entry FileEntry, categoryName string) Result {
	if !e.dryRun {
		if err := os.Remove(entry.Path); err != nil {
			return e.failed(entry, categoryName, err)
		}
	}
	return Result{Outcome: OutcomeDeleted, Entry: entry, Category: categoryName, Reason: "user request"}
}

func (e *Executor) move(entry FileEntry, categoryName, destDir string) Result {
	if !e.dryRun {
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return e.failed(entry, categoryName, err)
		}
	}

	rawDest := filepath.Join(destDir, entry.Name)

	// A destination equal to the current path means the file is already
	// organized; checked before conflict resolution so the file's own
	// presence does not trigger a spurious numbered rename.
	if rawDest == entry.Path {
		return Result{Outcome: OutcomeSkipped, Entry: entry, Category: categoryName, Reason: "already organized"}
	}

	resolved, err := fileutil.UniquePath(rawDest)
	if err != nil {
		return e.failed(entry, categoryName, err)
	}

	if !e.dryRun {
		if err := fileutil.MoveFile(entry.Path, resolved); err != nil {
			return e.failed(entry, categoryName, err)
		}
	}

	if resolved != rawDest {
		return Result{
			Outcome:     OutcomeRenamed,
			Entry:       entry,
			Destination: resolved,
			Category:    categoryName,
			Reason:      ReasonNameConflict,
		}
	}
	return Result{Outcome: OutcomeMoved, Entry: entry, Destination: resolved, Category: categoryName}
}

func (e *Executor) failed(entry FileEntry, categoryName string, err error) Result {
	e.logger.Warn("file operation failed",
		logging.String("file", entry.Name),
		logging.Error(err),
	)
	return Result{
		Outcome:  OutcomeFailed,
		Entry:    entry,
		Category: categoryName,
		Reason:   failureReason(err),
		Err:      err,
	}
}

// failureReason buckets an error into the coarse taxonomy surfaced to the
// operator; the wrapped error keeps the detail.
func failureReason(err error) string {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	case errors.Is(err, fs.ErrNotExist):
		return "source missing"
	case errors.Is(err, fileutil.ErrUniquePathExhausted):
		return "conflict resolution exhausted"
	default:
		return "io error"
	}
}
