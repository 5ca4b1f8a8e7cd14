// Package domain holds the leads bounded context's core types. It has no
// knowledge of storage or transport.
package domain

import "strings"

// Status is the pipeline stage of a lead.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusConverted Status = "converted"
)

// DefaultStatus is applied when no status is supplied upstream.
const DefaultStatus = StatusNew

// Statuses lists all valid pipeline stages.
var Statuses = []Status{StatusNew, StatusContacted, StatusConverted}

// ParseStatus normalizes raw status input. Unknown or absent values fall back
// to the default stage rather than failing.
func ParseStatus(raw string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusContacted:
		return StatusContacted
	case StatusConverted:
		return StatusConverted
	default:
		return DefaultStatus
	}
}

// Valid reports whether s is a known pipeline stage.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusConverted:
		return true
	}
	return false
}

// Record is the scoring input: a snapshot of the lead's weakly-structured
// fields. A nil field is absent; a present field that trims to the empty
// string is deliberately treated as absent as well, so that upstream callers
// passing blank strings and callers omitting the field score identically.
type Record struct {
	Name    *string
	Email   *string
	Company *string
	Status  Status
}

// Field returns the trimmed value of an optional field and whether it is
// present under the blank-equals-absent policy.
func Field(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
