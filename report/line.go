package report

import (
	"strings"

	"tubestatus/data/model"

	"github.com/pkg/errors"
)

const (
	reasonDelimiter = ": "
	sentenceEnd     = "."
)

// Options changes how degraded statuses are summarised.
type Options struct {
	// OnlyOneSentence cuts the reason at its first full stop.
	OnlyOneSentence bool
}

// Line is one rendered row of the report, before styling.
type Line struct {
	Name     string
	Color    RGB
	Severity string
	// Reason is the reason text as received; empty for a good service.
	Reason    string
	Separator string
	Summary   string
}

func (l Line) IsGoodService() bool {
	return l.Severity == model.GoodService
}

// Plain returns the row without any color.
func (l Line) Plain() string {
	return l.Name + l.Separator + l.Summary
}

// Describe turns a decoded entry into a report row.
//
// A good service prints as "<name>: Good Service". Otherwise the reason is
// trimmed to the text after its first ": " and printed as "<name>: <text>",
// or, with OnlyOneSentence, cut at the first "." and printed as
// "<name>:<text>" with no space after the colon.
func Describe(entry model.LineStatusEntry, opts Options) (Line, error) {
	if entry.Name == "" {
		return Line{}, errors.Wrap(ErrMissingField, "name")
	}
	color, err := LineColor(entry.Name)
	if err != nil {
		return Line{}, err
	}

	status, ok := entry.CurrentStatus()
	if !ok {
		return Line{}, ErrNoLineStatus
	}
	if status.StatusSeverityDescription == "" {
		return Line{}, errors.Wrap(ErrMissingField, "lineStatuses[0].statusSeverityDescription")
	}

	line := Line{
		Name:     entry.Name,
		Color:    color,
		Severity: status.StatusSeverityDescription,
	}
	if status.IsGoodService() {
		line.Separator = reasonDelimiter
		line.Summary = model.GoodService
		return line, nil
	}

	if status.Reason == "" {
		return Line{}, errors.Wrapf(ErrMissingField, "lineStatuses[0].reason (severity %q)", status.StatusSeverityDescription)
	}
	text, err := trimReason(status.Reason)
	if err != nil {
		return Line{}, err
	}
	line.Reason = status.Reason

	if opts.OnlyOneSentence {
		line.Separator = ":"
		line.Summary = firstSentence(text)
	} else {
		line.Separator = reasonDelimiter
		line.Summary = text
	}
	return line, nil
}

// trimReason drops everything up to and including the first ": ".
func trimReason(reason string) (string, error) {
	_, text, ok := strings.Cut(reason, reasonDelimiter)
	if !ok {
		return "", errors.Wrapf(ErrMalformedReason, "reason %q", reason)
	}
	return text, nil
}

func firstSentence(text string) string {
	sentence, _, _ := strings.Cut(text, sentenceEnd)
	return sentence
}
