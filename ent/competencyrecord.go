// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/certready/certready/ent/competencyrecord"
)

// CompetencyRecord is the model entity for the CompetencyRecord schema.
type CompetencyRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// Decimal in [0,1] at scale 4, stored as string
	Score string `json:"score,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// Incorrect holds the value of the "incorrect" field.
	Incorrect int `json:"incorrect,omitempty"`
	// LastUpdatedAt holds the value of the "last_updated_at" field.
	LastUpdatedAt time.Time `json:"last_updated_at,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompetencyRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case competencyrecord.FieldID, competencyrecord.FieldAttempts, competencyrecord.FieldCorrect, competencyrecord.FieldIncorrect:
			values[i] = new(sql.NullInt64)
		case competencyrecord.FieldUserID, competencyrecord.FieldTopicID, competencyrecord.FieldScore:
			values[i] = new(sql.NullString)
		case competencyrecord.FieldLastUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompetencyRecord fields.
func (_m *CompetencyRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case competencyrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case competencyrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case competencyrecord.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case competencyrecord.FieldScore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.String
			}
		case competencyrecord.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case competencyrecord.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case competencyrecord.FieldIncorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect", values[i])
			} else if value.Valid {
				_m.Incorrect = int(value.Int64)
			}
		case competencyrecord.FieldLastUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated_at", values[i])
			} else if value.Valid {
				_m.LastUpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompetencyRecord.
// This includes values selected through modifiers, order, etc.
func (_m *CompetencyRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CompetencyRecord.
// Note that you need to call CompetencyRecord.Unwrap() before calling this method if this CompetencyRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompetencyRecord) Update() *CompetencyRecordUpdateOne {
	return NewCompetencyRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompetencyRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompetencyRecord) Unwrap() *CompetencyRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompetencyRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompetencyRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CompetencyRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(_m.Score)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("incorrect=")
	builder.WriteString(fmt.Sprintf("%v", _m.Incorrect))
	builder.WriteString(", ")
	builder.WriteString("last_updated_at=")
	builder.WriteString(_m.LastUpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CompetencyRecords is a parsable slice of CompetencyRecord.
type CompetencyRecords []*CompetencyRecord
