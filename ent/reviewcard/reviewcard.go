// Code generated by ent, DO NOT EDIT.

package reviewcard

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewcard type in the database.
	Label = "review_card"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldEasiness holds the string denoting the easiness field in the database.
	FieldEasiness = "easiness"
	// FieldRepetitions holds the string denoting the repetitions field in the database.
	FieldRepetitions = "repetitions"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// FieldTotalReviews holds the string denoting the total_reviews field in the database.
	FieldTotalReviews = "total_reviews"
	// FieldSuccessfulReviews holds the string denoting the successful_reviews field in the database.
	FieldSuccessfulReviews = "successful_reviews"
	// Table holds the table name of the reviewcard in the database.
	Table = "review_cards"
)

// Columns holds all SQL columns for reviewcard fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuestionID,
	FieldEasiness,
	FieldRepetitions,
	FieldIntervalDays,
	FieldLastReviewedAt,
	FieldNextReviewAt,
	FieldTotalReviews,
	FieldSuccessfulReviews,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	RepetitionsValidator func(int) error
	// IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	IntervalDaysValidator func(int) error
	// TotalReviewsValidator is a validator for the "total_reviews" field. It is called by the builders before save.
	TotalReviewsValidator func(int) error
	// SuccessfulReviewsValidator is a validator for the "successful_reviews" field. It is called by the builders before save.
	SuccessfulReviewsValidator func(int) error
)

// OrderOption defines the ordering options for the ReviewCard queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByEasiness orders the results by the easiness field.
func ByEasiness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEasiness, opts...).ToFunc()
}

// ByRepetitions orders the results by the repetitions field.
func ByRepetitions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitions, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}

// ByTotalReviews orders the results by the total_reviews field.
func ByTotalReviews(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalReviews, opts...).ToFunc()
}

// BySuccessfulReviews orders the results by the successful_reviews field.
func BySuccessfulReviews(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessfulReviews, opts...).ToFunc()
}
