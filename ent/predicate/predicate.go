// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// Participant is the predicate function for participant builders.
type Participant func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)
