package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jensettl/folder-organizer/internal/organizer"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [source-dir]",
		Short: "Show where each file would go without moving anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			source, err := resolveSource(cfg, firstArg(args))
			if err != nil {
				return err
			}

			entries, err := organizer.Scan(source)
			if err != nil {
				return fmt.Errorf("scan %s: %w", source, err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No files to organize in %s\n", source)
				return nil
			}

			classifier := organizer.NewClassifier(cfg.CategoryMap(), source)
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				name, destDir := classifier.Classify(entry)
				rows = append(rows, []string{
					entry.Name,
					name,
					filepath.Join(filepath.Base(destDir), entry.Name),
				})
			}

			fmt.Fprintln(out, renderTable([]string{"File", "Category", "Destination"}, rows))
			fmt.Fprintf(out, "%d file(s) would be organized\n", len(entries))
			return nil
		},
	}
}
