package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompetencyRecord is the mastery state for one (user, topic) pair.
// Unlike the attempt ledger this table is mutable: each attempt or
// diagnostic finalization rewrites the row in place.
type CompetencyRecord struct {
	ent.Schema
}

func (CompetencyRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("topic_id").NotEmpty().Immutable(),
		field.String("score").
			Comment("Decimal in [0,1] at scale 4, stored as string"),
		field.Int("attempts").NonNegative(),
		field.Int("correct").NonNegative(),
		field.Int("incorrect").NonNegative(),
		field.Time("last_updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (CompetencyRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").Unique(),
		index.Fields("user_id"),
	}
}
