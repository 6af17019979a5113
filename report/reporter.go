package report

import (
	"context"
	"fmt"
	"io"

	"tubestatus/data/model"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Source supplies the decoded line statuses for one run.
type Source interface {
	LineStatuses(ctx context.Context) ([]model.LineStatusEntry, error)
}

// Reporter fetches the tube status once and writes one row per line.
type Reporter struct {
	source   Source
	renderer *Renderer
	out      io.Writer
	opts     Options
	logger   *log.Logger
}

func NewReporter(source Source, renderer *Renderer, out io.Writer, opts Options, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{
		source:   source,
		renderer: renderer,
		out:      out,
		opts:     opts,
		logger:   logger,
	}
}

// Run prints every line in API order. The first entry that cannot be
// described stops the run; rows already written are left as they are.
func (r *Reporter) Run(ctx context.Context) error {
	entries, err := r.source.LineStatuses(ctx)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		line, err := describeEntry(i, entry, r.opts)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.out, r.renderer.Format(line)); err != nil {
			return errors.Wrap(err, "cannot write report")
		}
	}
	r.logger.Debug("report written", "lines", len(entries))
	return nil
}

// Collect describes every line without writing anything. It fails on the
// first entry that cannot be described.
func (r *Reporter) Collect(ctx context.Context) ([]Line, error) {
	entries, err := r.source.LineStatuses(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(entries))
	for i, entry := range entries {
		line, err := describeEntry(i, entry, r.opts)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func describeEntry(i int, entry model.LineStatusEntry, opts Options) (Line, error) {
	line, err := Describe(entry, opts)
	if err != nil {
		return Line{}, errors.Wrapf(err, "entry %d (%q)", i, entry.Name)
	}
	return line, nil
}
