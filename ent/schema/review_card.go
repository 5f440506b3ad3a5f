package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewCard is the spaced-repetition state for one (user, question)
// pair: easiness factor, repetition streak and the next due date.
type ReviewCard struct {
	ent.Schema
}

func (ReviewCard) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("question_id").NotEmpty().Immutable(),
		field.String("easiness").
			Comment("Decimal easiness factor at scale 2, stored as string"),
		field.Int("repetitions").NonNegative(),
		field.Int("interval_days").Positive(),
		field.Time("last_reviewed_at"),
		field.Time("next_review_at"),
		field.Int("total_reviews").NonNegative(),
		field.Int("successful_reviews").NonNegative(),
	}
}

func (ReviewCard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").Unique(),
		index.Fields("user_id", "next_review_at"),
	}
}
