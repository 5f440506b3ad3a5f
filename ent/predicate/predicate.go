// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// CompetencyRecord is the predicate function for competencyrecord builders.
type CompetencyRecord func(*sql.Selector)

// ExamSession is the predicate function for examsession builders.
type ExamSession func(*sql.Selector)

// ReviewCard is the predicate function for reviewcard builders.
type ReviewCard func(*sql.Selector)
