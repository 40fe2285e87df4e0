// Package organizer implements the file classification and move engine.
//
// A Session scans the immediate files of a source directory, asks a
// DecisionProvider what to do with each one, classifies it into a category
// folder, and hands it to the Executor, which performs (or, under dry-run,
// simulates) the move, delete, or skip with collision-safe renaming. Every
// file terminates in exactly one Result; per-file failures never abort the
// session.
//
// The session is single-threaded by design: each file completes before the
// next begins, so the only remaining race is the inherent check-then-act
// gap in unique-path resolution against concurrent external writers.
package organizer
