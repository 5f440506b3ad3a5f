package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamSession is a practice, diagnostic, review or mock-exam session.
// Assembled kinds carry their full question list; open-ended kinds
// grow the list as questions are served.
type ExamSession struct {
	ent.Schema
}

func (ExamSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty().Unique().Immutable(),
		field.String("user_id").NotEmpty().Immutable(),
		field.String("course_id").NotEmpty().Immutable(),
		field.String("kind").NotEmpty().Immutable(),
		field.JSON("questions", []string{}).
			Comment("Ordered question ids"),
		field.Int("total").NonNegative(),
		field.Int("correct").NonNegative(),
		field.Time("started_at").Immutable(),
		field.Time("completed_at").Optional(),
		field.Bool("completed").Default(false),
	}
}

func (ExamSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "kind"),
	}
}
