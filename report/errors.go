package report

import "github.com/pkg/errors"

var (
	ErrUnknownLine     = errors.New("unknown line")
	ErrNoLineStatus    = errors.New("lineStatuses is empty")
	ErrMissingField    = errors.New("missing field")
	ErrMalformedReason = errors.New(`reason has no ": " delimiter`)
)
