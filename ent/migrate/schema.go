// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "competency_at_attempt", Type: field.TypeString},
		{Name: "difficulty_at_attempt", Type: field.TypeString},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_user_id_question_id_session_id",
				Unique:  true,
				Columns: []*schema.Column{AttemptEventsColumns[4], AttemptEventsColumns[5], AttemptEventsColumns[6]},
			},
			{
				Name:    "attemptevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[6]},
			},
			{
				Name:    "attemptevent_user_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4], AttemptEventsColumns[7]},
			},
		},
	}
	// CompetencyRecordsColumns holds the columns for the "competency_records" table.
	CompetencyRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "incorrect", Type: field.TypeInt},
		{Name: "last_updated_at", Type: field.TypeTime},
	}
	// CompetencyRecordsTable holds the schema information for the "competency_records" table.
	CompetencyRecordsTable = &schema.Table{
		Name:       "competency_records",
		Columns:    CompetencyRecordsColumns,
		PrimaryKey: []*schema.Column{CompetencyRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "competencyrecord_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{CompetencyRecordsColumns[1], CompetencyRecordsColumns[2]},
			},
			{
				Name:    "competencyrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{CompetencyRecordsColumns[1]},
			},
		},
	}
	// ExamSessionsColumns holds the columns for the "exam_sessions" table.
	ExamSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "total", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed", Type: field.TypeBool, Default: false},
	}
	// ExamSessionsTable holds the schema information for the "exam_sessions" table.
	ExamSessionsTable = &schema.Table{
		Name:       "exam_sessions",
		Columns:    ExamSessionsColumns,
		PrimaryKey: []*schema.Column{ExamSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExamSessionsColumns[2]},
			},
			{
				Name:    "examsession_user_id_kind",
				Unique:  false,
				Columns: []*schema.Column{ExamSessionsColumns[2], ExamSessionsColumns[4]},
			},
		},
	}
	// ReviewCardsColumns holds the columns for the "review_cards" table.
	ReviewCardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "easiness", Type: field.TypeString},
		{Name: "repetitions", Type: field.TypeInt},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "last_reviewed_at", Type: field.TypeTime},
		{Name: "next_review_at", Type: field.TypeTime},
		{Name: "total_reviews", Type: field.TypeInt},
		{Name: "successful_reviews", Type: field.TypeInt},
	}
	// ReviewCardsTable holds the schema information for the "review_cards" table.
	ReviewCardsTable = &schema.Table{
		Name:       "review_cards",
		Columns:    ReviewCardsColumns,
		PrimaryKey: []*schema.Column{ReviewCardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewcard_user_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewCardsColumns[1], ReviewCardsColumns[2]},
			},
			{
				Name:    "reviewcard_user_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewCardsColumns[1], ReviewCardsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		CompetencyRecordsTable,
		ExamSessionsTable,
		ReviewCardsTable,
	}
)

func init() {
}
