package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/jensettl/folder-organizer/internal/category"
	"github.com/jensettl/folder-organizer/internal/history"
	"github.com/jensettl/folder-organizer/internal/logging"
)

// SessionOptions collects the collaborators a session run needs.
type SessionOptions struct {
	// Source is the directory whose immediate files are organized.
	Source string
	// Categories is the effective extension table.
	Categories category.Map
	// Provider supplies the per-file decision; nil means automatic mode.
	Provider DecisionProvider
	// DryRun disables all filesystem mutation.
	DryRun bool
	// Logger receives structured per-file records; nil means silent.
	Logger *slog.Logger
	// History receives one row per result; nil disables recording.
	History *history.Store
	// OnResult, when set, observes each result as it is produced (used by
	// the CLI for progress display).
	OnResult func(Result)
}

// Session orchestrates one organization run over a source directory.
type Session struct {
	id         string
	source     string
	classifier *Classifier
	executor   *Executor
	provider   DecisionProvider
	logger     *slog.Logger
	store      *history.Store
	dryRun     bool
	onResult   func(Result)
}

// NewSession validates the source directory and assembles a session. An
// invalid source is the one fatal configuration error of the engine; every
// later fault is per-file.
func NewSession(opts SessionOptions) (*Session, error) {
	info, err := os.Stat(opts.Source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("source directory does not exist: %s", opts.Source)
		}
		return nil, fmt.Errorf("stat source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path is not a directory: %s", opts.Source)
	}

	categories := opts.Categories
	if categories == nil {
		categories = category.BuiltIn()
	}
	provider := opts.Provider
	if provider == nil {
		provider = AutoProvider()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	id := uuid.NewString()
	sessionLogger := logger.With(
		logging.String(logging.FieldComponent, "session"),
		logging.String(logging.FieldSessionID, id),
	)

	return &Session{
		id:         id,
		source:     opts.Source,
		classifier: NewClassifier(categories, opts.Source),
		executor:   NewExecutor(opts.DryRun, logger),
		provider:   provider,
		logger:     sessionLogger,
		store:      opts.History,
		dryRun:     opts.DryRun,
		onResult:   opts.OnResult,
	}, nil
}

// ID returns the unique identifier stamped on this run's log lines and
// history rows.
func (s *Session) ID() string {
	return s.id
}

// Classifier exposes the session's classifier for preview and manual
// category menus.
func (s *Session) Classifier() *Classifier {
	return s.classifier
}

// Scan snapshots the files the session would process.
func (s *Session) Scan() ([]FileEntry, error) {
	return Scan(s.source)
}

// Run processes every scanned file to a terminal state and returns the
// per-file results plus their summary. Context cancellation is honored
// between files only, so a completed move is never half-done; the results
// so far accompany the context error.
func (s *Session) Run(ctx context.Context) ([]Result, Summary, error) {
	entries, err := s.Scan()
	if err != nil {
		return nil, Summary{}, err
	}

	s.logger.Info("session started",
		logging.String("source", s.source),
		logging.Int("files", len(entries)),
		logging.Bool("dry_run", s.dryRun),
	)

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			summary := Summarize(results)
			s.logger.Warn("session interrupted", logging.Int("processed", len(results)))
			return results, summary, err
		}

		decision, err := s.provider.Decide(entry)
		if err != nil {
			summary := Summarize(results)
			return results, summary, fmt.Errorf("decision for %s: %w", entry.Name, err)
		}

		result := s.processEntry(entry, decision)
		results = append(results, result)
		s.logResult(result)
		s.recordResult(ctx, result)
		if s.onResult != nil {
			s.onResult(result)
		}
	}

	summary := Summarize(results)
	s.logger.Info("session completed",
		logging.Int("total", summary.Total),
		logging.Int("moved", summary.Moved),
		logging.Int("renamed", summary.Renamed),
		logging.Int("deleted", summary.Deleted),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
	)
	return results, summary, nil
}

func (s *Session) processEntry(entry FileEntry, decision Decision) Result {
	categoryName, destDir := s.classifier.Classify(entry)
	if decision.Action == ActionManual && decision.Category != "" {
		categoryName = decision.Category
		destDir = s.classifier.DirFor(categoryName)
	}
	return s.executor.Apply(entry, decision, categoryName, destDir)
}

func (s *Session) logResult(result Result) {
	attrs := []logging.Attr{
		logging.String("outcome", string(result.Outcome)),
		logging.String("file", result.Entry.Name),
		logging.String("category", result.Category),
	}
	if result.Destination != "" {
		attrs = append(attrs, logging.String("destination", result.Destination))
	}
	if result.Reason != "" {
		attrs = append(attrs, logging.String("reason", result.Reason))
	}

	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	if result.Outcome == OutcomeFailed {
		args = append(args, logging.Error(result.Err))
		s.logger.Error("file failed", args...)
		return
	}
	s.logger.Info("file processed", args...)
}

// recordResult persists the result to history. A history write failure is
// logged and swallowed: the audit trail is best-effort, the move already
// happened.
func (s *Session) recordResult(ctx context.Context, result Result) {
	if s.store == nil {
		return
	}
	op := history.Operation{
		SessionID:   s.id,
		Outcome:     string(result.Outcome),
		Source:      result.Entry.Path,
		Destination: result.Destination,
		Category:    result.Category,
		Reason:      result.Reason,
		DryRun:      s.dryRun,
	}
	if result.Err != nil {
		op.ErrorText = result.Err.Error()
	}
	if err := s.store.Record(ctx, op); err != nil {
		s.logger.Warn("history record failed", logging.Error(err))
	}
}
