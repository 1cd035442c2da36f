// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Psychologist is the predicate function for psychologist builders.
type Psychologist func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// TimeSlot is the predicate function for timeslot builders.
type TimeSlot func(*sql.Selector)
