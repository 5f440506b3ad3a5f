package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent is one answered question in the append-only attempt
// ledger. Ledger rows are never updated or deleted; every derived
// figure (recency exclusion, review days, session scoring) is a query
// over this table.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").NotEmpty().Unique().Immutable(),
		field.String("user_id").NotEmpty().Immutable(),
		field.String("question_id").NotEmpty().Immutable(),
		field.String("session_id").NotEmpty().Immutable(),
		field.String("topic_id").NotEmpty().Immutable(),
		field.Bool("correct").Immutable(),
		field.String("competency_at_attempt").
			Immutable().
			Comment("Decimal score before the update, stored as string"),
		field.String("difficulty_at_attempt").
			Immutable().
			Comment("Question difficulty at attempt time, stored as string"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id", "session_id").Unique(),
		index.Fields("user_id"),
		index.Fields("session_id"),
		index.Fields("user_id", "topic_id"),
	}
}
