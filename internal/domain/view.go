package domain

import (
	"fmt"
	"time"
)

// ViewKind is the closed set of calendar presentations.
// Every dispatch on a ViewKind must be an exhaustive switch so that
// adding a kind is a compiler-visible change.
type ViewKind string

const (
	ViewMonth ViewKind = "month"
	ViewWeek  ViewKind = "week"
	ViewDay   ViewKind = "day"
	ViewList  ViewKind = "list"
)

// Valid returns true for one of the four known view kinds
func (k ViewKind) Valid() bool {
	switch k {
	case ViewMonth, ViewWeek, ViewDay, ViewList:
		return true
	default:
		return false
	}
}

// ParseViewKind validates and converts a raw view kind string
func ParseViewKind(s string) (ViewKind, error) {
	kind := ViewKind(s)
	if !kind.Valid() {
		return "", fmt.Errorf("unknown view kind %q", s)
	}
	return kind, nil
}

// DisplayedPeriod describes what the main calendar view currently shows
type DisplayedPeriod struct {
	Kind   ViewKind
	Anchor time.Time
}
