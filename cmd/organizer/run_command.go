package main

import (
	"fmt"
	"io"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jensettl/folder-organizer/internal/config"
	"github.com/jensettl/folder-organizer/internal/history"
	"github.com/jensettl/folder-organizer/internal/logging"
	"github.com/jensettl/folder-organizer/internal/organizer"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		dryRun      bool
		interactive bool
		assumeYes   bool
	)

	cmd := &cobra.Command{
		Use:   "run [source-dir]",
		Short: "Organize files in a directory into category folders",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, ctx, runOptions{
				sourceArg:   firstArg(args),
				dryRun:      dryRun,
				interactive: interactive,
				assumeYes:   assumeYes,
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate the run without touching any files")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Decide each file on the terminal")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

type runOptions struct {
	sourceArg   string
	dryRun      bool
	interactive bool
	assumeYes   bool
}

func runOrganize(cmd *cobra.Command, ctx *commandContext, opts runOptions) error {
	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	source, err := resolveSource(cfg, opts.sourceArg)
	if err != nil {
		return err
	}

	if opts.interactive && !stdinIsTerminal() {
		return fmt.Errorf("interactive mode requires a terminal on stdin")
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("prepare directories: %w", err)
	}

	runLock := flock.New(cfg.LockPath())
	locked, err := runLock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another organizer run is in progress (lock %s)", cfg.LockPath())
	}
	defer runLock.Unlock()

	logger, logPath, closeLog, err := logging.NewSession(cfg.Paths.LogDir, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.HistoryDBPath())
		if err != nil {
			logger.Warn("history disabled for this run", logging.Error(err))
			store = nil
		} else {
			defer store.Close()
		}
	}

	categories := cfg.CategoryMap()
	classifier := organizer.NewClassifier(categories, source)

	entries, err := organizer.Scan(source)
	if err != nil {
		return fmt.Errorf("scan %s: %w", source, err)
	}
	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No files to organize in %s\n", source)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found %d file(s) in %s\n", len(entries), source)
	fmt.Fprintln(out, renderCategoryPreview(classifier, entries))
	if opts.dryRun {
		fmt.Fprintln(out, "Dry run: no files will be moved or deleted.")
	}

	if !opts.assumeYes && !opts.interactive && !opts.dryRun {
		confirmed, err := confirmRun(cmd, len(entries))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	var provider organizer.DecisionProvider
	if opts.interactive {
		provider = newPromptProvider(cmd.InOrStdin(), out, classifier)
	} else {
		provider = organizer.AutoProvider()
	}

	var bar *progressbar.ProgressBar
	var onResult func(organizer.Result)
	if !opts.interactive && stdoutIsTerminal() {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetDescription("Organizing"),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionShowCount(),
		)
		onResult = func(organizer.Result) {
			_ = bar.Add(1)
		}
	}

	session, err := organizer.NewSession(organizer.SessionOptions{
		Source:     source,
		Categories: categories,
		Provider:   provider,
		DryRun:     opts.dryRun,
		Logger:     logger,
		History:    store,
		OnResult:   onResult,
	})
	if err != nil {
		return err
	}

	results, summary, runErr := session.Run(signalCtx)
	if bar != nil {
		_ = bar.Finish()
	}

	fmt.Fprintln(out, renderSummary(summary, opts.dryRun))
	printFailures(out, results)
	fmt.Fprintf(out, "Log written to %s\n", logPath)

	if runErr != nil {
		return runErr
	}
	return nil
}

func resolveSource(cfg *config.Config, arg string) (string, error) {
	source := strings.TrimSpace(arg)
	if source == "" {
		source = cfg.Paths.SourceDir
	}
	if source == "" {
		return "", fmt.Errorf("no source directory: pass one as an argument or set paths.source_dir in the config")
	}
	expanded, err := config.ExpandPath(source)
	if err != nil {
		return "", fmt.Errorf("resolve source path: %w", err)
	}
	return expanded, nil
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func confirmRun(cmd *cobra.Command, count int) (bool, error) {
	if !stdinIsTerminal() {
		return false, fmt.Errorf("refusing to organize %d file(s) without confirmation; re-run with --yes", count)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Organize %d file(s)? [y/N]: ", count)
	var answer string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &answer); err != nil {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func renderCategoryPreview(classifier *organizer.Classifier, entries []organizer.FileEntry) string {
	counts := make(map[string]int)
	for _, entry := range entries {
		name, _ := classifier.Classify(entry)
		counts[name]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, strconv.Itoa(counts[name])})
	}
	return renderTable([]string{"Category", "Files"}, rows, 2)
}

func printFailures(out io.Writer, results []organizer.Result) {
	for _, result := range results {
		if result.Outcome != organizer.OutcomeFailed {
			continue
		}
		fmt.Fprintf(out, "failed: %s: %s", result.Entry.Name, result.Reason)
		if result.Err != nil {
			fmt.Fprintf(out, " (%v)", result.Err)
		}
		fmt.Fprintln(out)
	}
}

func renderSummary(summary organizer.Summary, dryRun bool) string {
	rows := [][]string{
		{"Moved", strconv.Itoa(summary.Moved)},
		{"Renamed", strconv.Itoa(summary.Renamed)},
		{"Deleted", strconv.Itoa(summary.Deleted)},
		{"Skipped", strconv.Itoa(summary.Skipped)},
		{"Failed", strconv.Itoa(summary.Failed)},
	}
	header := "Result"
	if dryRun {
		header = "Result (dry run)"
	}
	return renderTable([]string{header, "Files"}, rows, 2)
}
