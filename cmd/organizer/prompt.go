package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jensettl/folder-organizer/internal/organizer"
)

// promptProvider asks the operator for a per-file decision on the terminal.
// It implements organizer.DecisionProvider; a read error (EOF on stdin)
// aborts the session cleanly.
type promptProvider struct {
	in         *bufio.Reader
	out        io.Writer
	classifier *organizer.Classifier
}

func newPromptProvider(in io.Reader, out io.Writer, classifier *organizer.Classifier) *promptProvider {
	return &promptProvider{in: bufio.NewReader(in), out: out, classifier: classifier}
}

func (p *promptProvider) Decide(entry organizer.FileEntry) (organizer.Decision, error) {
	suggested, _ := p.classifier.Classify(entry)
	fmt.Fprintf(p.out, "\n%s  (suggested category: %s)\n", entry.Name, suggested)

	for {
		fmt.Fprint(p.out, "Action [a]uto / [m]anual / [d]elete / [s]kip (default a): ")
		line, err := p.readLine()
		if err != nil {
			return organizer.Decision{}, err
		}
		switch strings.ToLower(line) {
		case "", "a", "auto":
			return organizer.Decision{Action: organizer.ActionAuto}, nil
		case "m", "manual":
			return p.manualCategory()
		case "d", "delete":
			return p.confirmDelete(entry)
		case "s", "skip":
			return organizer.Decision{Action: organizer.ActionSkip}, nil
		default:
			fmt.Fprintf(p.out, "Unrecognized choice %q\n", line)
		}
	}
}

func (p *promptProvider) manualCategory() (organizer.Decision, error) {
	names := p.classifier.Categories()
	fmt.Fprintln(p.out, "Available categories:")
	for i, name := range names {
		fmt.Fprintf(p.out, "  [%d] %s\n", i+1, name)
	}
	fmt.Fprint(p.out, "Category number or name (empty for suggested): ")

	line, err := p.readLine()
	if err != nil {
		return organizer.Decision{}, err
	}
	if line == "" {
		return organizer.Decision{Action: organizer.ActionAuto}, nil
	}
	if index, convErr := strconv.Atoi(line); convErr == nil {
		if index < 1 || index > len(names) {
			fmt.Fprintf(p.out, "Number %d out of range, skipping file\n", index)
			return organizer.Decision{Action: organizer.ActionSkip}, nil
		}
		return organizer.Decision{Action: organizer.ActionManual, Category: names[index-1]}, nil
	}
	return organizer.Decision{Action: organizer.ActionManual, Category: line}, nil
}

func (p *promptProvider) confirmDelete(entry organizer.FileEntry) (organizer.Decision, error) {
	fmt.Fprintf(p.out, "Delete %s? [y/N]: ", entry.Name)
	line, err := p.readLine()
	if err != nil {
		return organizer.Decision{}, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return organizer.Decision{Action: organizer.ActionDelete}, nil
	default:
		return organizer.Decision{Action: organizer.ActionSkip}, nil
	}
}

func (p *promptProvider) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
