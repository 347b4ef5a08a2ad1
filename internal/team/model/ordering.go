package model

import (
	"fmt"
	"strings"
)

// Ordering names accepted by OrderingFor.
const (
	OrderingStandings = "standings"
	OrderingPct       = "pct"
)

// OrderTerm is one ORDER BY column.
type OrderTerm struct {
	Column string
	Desc   bool
}

// Ordering is an ordered list of sort terms over teams columns.
type Ordering []OrderTerm

// StandingsOrdering groups teams by division, best record first.
func StandingsOrdering() Ordering {
	return Ordering{
		{Column: "team_division"},
		{Column: "pct", Desc: true},
		{Column: "w"},
		{Column: "team_name"},
	}
}

// PctOrdering sorts the whole league by win percentage.
func PctOrdering() Ordering {
	return Ordering{
		{Column: "pct", Desc: true},
	}
}

// OrderingFor resolves an ordering by name.
func OrderingFor(name string) (Ordering, error) {
	switch strings.ToLower(name) {
	case OrderingStandings:
		return StandingsOrdering(), nil
	case OrderingPct:
		return PctOrdering(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrdering, name)
	}
}

// String renders the ordering as an ORDER BY list.
func (o Ordering) String() string {
	parts := make([]string, 0, len(o))
	for _, term := range o {
		dir := "ASC"
		if term.Desc {
			dir = "DESC"
		}
		parts = append(parts, term.Column+" "+dir)
	}
	return strings.Join(parts, ", ")
}
