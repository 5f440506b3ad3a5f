// Code generated by ent, DO NOT EDIT.

package reviewcard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/certready/certready/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldQuestionID, v))
}

// Easiness applies equality check predicate on the "easiness" field. It's identical to EasinessEQ.
func Easiness(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldEasiness, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldRepetitions, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldIntervalDays, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldLastReviewedAt, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldNextReviewAt, v))
}

// TotalReviews applies equality check predicate on the "total_reviews" field. It's identical to TotalReviewsEQ.
func TotalReviews(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldTotalReviews, v))
}

// SuccessfulReviews applies equality check predicate on the "successful_reviews" field. It's identical to SuccessfulReviewsEQ.
func SuccessfulReviews(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldSuccessfulReviews, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContainsFold(FieldQuestionID, v))
}

// EasinessEQ applies the EQ predicate on the "easiness" field.
func EasinessEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldEasiness, v))
}

// EasinessNEQ applies the NEQ predicate on the "easiness" field.
func EasinessNEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldEasiness, v))
}

// EasinessIn applies the In predicate on the "easiness" field.
func EasinessIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldEasiness, vs...))
}

// EasinessNotIn applies the NotIn predicate on the "easiness" field.
func EasinessNotIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldEasiness, vs...))
}

// EasinessGT applies the GT predicate on the "easiness" field.
func EasinessGT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldEasiness, v))
}

// EasinessGTE applies the GTE predicate on the "easiness" field.
func EasinessGTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldEasiness, v))
}

// EasinessLT applies the LT predicate on the "easiness" field.
func EasinessLT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldEasiness, v))
}

// EasinessLTE applies the LTE predicate on the "easiness" field.
func EasinessLTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldEasiness, v))
}

// EasinessContains applies the Contains predicate on the "easiness" field.
func EasinessContains(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContains(FieldEasiness, v))
}

// EasinessHasPrefix applies the HasPrefix predicate on the "easiness" field.
func EasinessHasPrefix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasPrefix(FieldEasiness, v))
}

// EasinessHasSuffix applies the HasSuffix predicate on the "easiness" field.
func EasinessHasSuffix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasSuffix(FieldEasiness, v))
}

// EasinessEqualFold applies the EqualFold predicate on the "easiness" field.
func EasinessEqualFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEqualFold(FieldEasiness, v))
}

// EasinessContainsFold applies the ContainsFold predicate on the "easiness" field.
func EasinessContainsFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContainsFold(FieldEasiness, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldRepetitions, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldIntervalDays, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldLastReviewedAt, v))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldNextReviewAt, v))
}

// TotalReviewsEQ applies the EQ predicate on the "total_reviews" field.
func TotalReviewsEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldTotalReviews, v))
}

// TotalReviewsNEQ applies the NEQ predicate on the "total_reviews" field.
func TotalReviewsNEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldTotalReviews, v))
}

// TotalReviewsIn applies the In predicate on the "total_reviews" field.
func TotalReviewsIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldTotalReviews, vs...))
}

// TotalReviewsNotIn applies the NotIn predicate on the "total_reviews" field.
func TotalReviewsNotIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldTotalReviews, vs...))
}

// TotalReviewsGT applies the GT predicate on the "total_reviews" field.
func TotalReviewsGT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldTotalReviews, v))
}

// TotalReviewsGTE applies the GTE predicate on the "total_reviews" field.
func TotalReviewsGTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldTotalReviews, v))
}

// TotalReviewsLT applies the LT predicate on the "total_reviews" field.
func TotalReviewsLT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldTotalReviews, v))
}

// TotalReviewsLTE applies the LTE predicate on the "total_reviews" field.
func TotalReviewsLTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldTotalReviews, v))
}

// SuccessfulReviewsEQ applies the EQ predicate on the "successful_reviews" field.
func SuccessfulReviewsEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldSuccessfulReviews, v))
}

// SuccessfulReviewsNEQ applies the NEQ predicate on the "successful_reviews" field.
func SuccessfulReviewsNEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldSuccessfulReviews, v))
}

// SuccessfulReviewsIn applies the In predicate on the "successful_reviews" field.
func SuccessfulReviewsIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldSuccessfulReviews, vs...))
}

// SuccessfulReviewsNotIn applies the NotIn predicate on the "successful_reviews" field.
func SuccessfulReviewsNotIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldSuccessfulReviews, vs...))
}

// SuccessfulReviewsGT applies the GT predicate on the "successful_reviews" field.
func SuccessfulReviewsGT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldSuccessfulReviews, v))
}

// SuccessfulReviewsGTE applies the GTE predicate on the "successful_reviews" field.
func SuccessfulReviewsGTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldSuccessfulReviews, v))
}

// SuccessfulReviewsLT applies the LT predicate on the "successful_reviews" field.
func SuccessfulReviewsLT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldSuccessfulReviews, v))
}

// SuccessfulReviewsLTE applies the LTE predicate on the "successful_reviews" field.
func SuccessfulReviewsLTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldSuccessfulReviews, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewCard) predicate.ReviewCard {
	return predicate.ReviewCard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewCard) predicate.ReviewCard {
	return predicate.ReviewCard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewCard) predicate.ReviewCard {
	return predicate.ReviewCard(sql.NotPredicates(p))
}
