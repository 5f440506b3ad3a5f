// Code generated by ent, DO NOT EDIT.

package competencyrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/certready/certready/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldTopicID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldScore, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldAttempts, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldCorrect, v))
}

// Incorrect applies equality check predicate on the "incorrect" field. It's identical to IncorrectEQ.
func Incorrect(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldIncorrect, v))
}

// LastUpdatedAt applies equality check predicate on the "last_updated_at" field. It's identical to LastUpdatedAtEQ.
func LastUpdatedAt(v time.Time) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldContainsFold(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldContainsFold(FieldTopicID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLTE(FieldScore, v))
}

// ScoreContains applies the Contains predicate on the "score" field.
func ScoreContains(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldContains(FieldScore, v))
}

// ScoreHasPrefix applies the HasPrefix predicate on the "score" field.
func ScoreHasPrefix(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldHasPrefix(FieldScore, v))
}

// ScoreHasSuffix applies the HasSuffix predicate on the "score" field.
func ScoreHasSuffix(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldHasSuffix(FieldScore, v))
}

// ScoreEqualFold applies the EqualFold predicate on the "score" field.
func ScoreEqualFold(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEqualFold(FieldScore, v))
}

// ScoreContainsFold applies the ContainsFold predicate on the "score" field.
func ScoreContainsFold(v string) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldContainsFold(FieldScore, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLTE(FieldAttempts, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLTE(FieldCorrect, v))
}

// IncorrectEQ applies the EQ predicate on the "incorrect" field.
func IncorrectEQ(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldIncorrect, v))
}

// IncorrectNEQ applies the NEQ predicate on the "incorrect" field.
func IncorrectNEQ(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNEQ(FieldIncorrect, v))
}

// IncorrectIn applies the In predicate on the "incorrect" field.
func IncorrectIn(vs ...int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldIn(FieldIncorrect, vs...))
}

// IncorrectNotIn applies the NotIn predicate on the "incorrect" field.
func IncorrectNotIn(vs ...int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNotIn(FieldIncorrect, vs...))
}

// IncorrectGT applies the GT predicate on the "incorrect" field.
func IncorrectGT(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGT(FieldIncorrect, v))
}

// IncorrectGTE applies the GTE predicate on the "incorrect" field.
func IncorrectGTE(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGTE(FieldIncorrect, v))
}

// IncorrectLT applies the LT predicate on the "incorrect" field.
func IncorrectLT(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLT(FieldIncorrect, v))
}

// IncorrectLTE applies the LTE predicate on the "incorrect" field.
func IncorrectLTE(v int) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLTE(FieldIncorrect, v))
}

// LastUpdatedAtEQ applies the EQ predicate on the "last_updated_at" field.
func LastUpdatedAtEQ(v time.Time) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtNEQ applies the NEQ predicate on the "last_updated_at" field.
func LastUpdatedAtNEQ(v time.Time) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtIn applies the In predicate on the "last_updated_at" field.
func LastUpdatedAtIn(vs ...time.Time) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtNotIn applies the NotIn predicate on the "last_updated_at" field.
func LastUpdatedAtNotIn(vs ...time.Time) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldNotIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtGT applies the GT predicate on the "last_updated_at" field.
func LastUpdatedAtGT(v time.Time) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtGTE applies the GTE predicate on the "last_updated_at" field.
func LastUpdatedAtGTE(v time.Time) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldGTE(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLT applies the LT predicate on the "last_updated_at" field.
func LastUpdatedAtLT(v time.Time) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLTE applies the LTE predicate on the "last_updated_at" field.
func LastUpdatedAtLTE(v time.Time) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.FieldLTE(FieldLastUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompetencyRecord) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompetencyRecord) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompetencyRecord) predicate.CompetencyRecord {
	return predicate.CompetencyRecord(sql.NotPredicates(p))
}
