// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/certready/certready/ent/reviewcard"
)

// ReviewCard is the model entity for the ReviewCard schema.
type ReviewCard struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Decimal easiness factor at scale 2, stored as string
	Easiness string `json:"easiness,omitempty"`
	// Repetitions holds the value of the "repetitions" field.
	Repetitions int `json:"repetitions,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// LastReviewedAt holds the value of the "last_reviewed_at" field.
	LastReviewedAt time.Time `json:"last_reviewed_at,omitempty"`
	// NextReviewAt holds the value of the "next_review_at" field.
	NextReviewAt time.Time `json:"next_review_at,omitempty"`
	// TotalReviews holds the value of the "total_reviews" field.
	TotalReviews int `json:"total_reviews,omitempty"`
	// SuccessfulReviews holds the value of the "successful_reviews" field.
	SuccessfulReviews int `json:"successful_reviews,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewCard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewcard.FieldID, reviewcard.FieldRepetitions, reviewcard.FieldIntervalDays, reviewcard.FieldTotalReviews, reviewcard.FieldSuccessfulReviews:
			values[i] = new(sql.NullInt64)
		case reviewcard.FieldUserID, reviewcard.FieldQuestionID, reviewcard.FieldEasiness:
			values[i] = new(sql.NullString)
		case reviewcard.FieldLastReviewedAt, reviewcard.FieldNextReviewAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewCard fields.
func (_m *ReviewCard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewcard.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewcard.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case reviewcard.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case reviewcard.FieldEasiness:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field easiness", values[i])
			} else if value.Valid {
				_m.Easiness = value.String
			}
		case reviewcard.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				_m.Repetitions = int(value.Int64)
			}
		case reviewcard.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case reviewcard.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = value.Time
			}
		case reviewcard.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				_m.NextReviewAt = value.Time
			}
		case reviewcard.FieldTotalReviews:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_reviews", values[i])
			} else if value.Valid {
				_m.TotalReviews = int(value.Int64)
			}
		case reviewcard.FieldSuccessfulReviews:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successful_reviews", values[i])
			} else if value.Valid {
				_m.SuccessfulReviews = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewCard.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewCard) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewCard.
// Note that you need to call ReviewCard.Unwrap() before calling this method if this ReviewCard
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewCard) Update() *ReviewCardUpdateOne {
	return NewReviewCardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewCard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewCard) Unwrap() *ReviewCard {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewCard is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewCard) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewCard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("easiness=")
	builder.WriteString(_m.Easiness)
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("last_reviewed_at=")
	builder.WriteString(_m.LastReviewedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("next_review_at=")
	builder.WriteString(_m.NextReviewAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_reviews=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalReviews))
	builder.WriteString(", ")
	builder.WriteString("successful_reviews=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessfulReviews))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewCards is a parsable slice of ReviewCard.
type ReviewCards []*ReviewCard
