// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/certready/certready/ent/attemptevent"
	"github.com/certready/certready/ent/competencyrecord"
	"github.com/certready/certready/ent/examsession"
	"github.com/certready/certready/ent/reviewcard"
	"github.com/certready/certready/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[1].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[2].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[3].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescTopicID is the schema descriptor for topic_id field.
	attempteventDescTopicID := attempteventFields[4].Descriptor()
	// attemptevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	attemptevent.TopicIDValidator = attempteventDescTopicID.Validators[0].(func(string) error)
	competencyrecordFields := schema.CompetencyRecord{}.Fields()
	_ = competencyrecordFields
	// competencyrecordDescUserID is the schema descriptor for user_id field.
	competencyrecordDescUserID := competencyrecordFields[0].Descriptor()
	// competencyrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	competencyrecord.UserIDValidator = competencyrecordDescUserID.Validators[0].(func(string) error)
	// competencyrecordDescTopicID is the schema descriptor for topic_id field.
	competencyrecordDescTopicID := competencyrecordFields[1].Descriptor()
	// competencyrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	competencyrecord.TopicIDValidator = competencyrecordDescTopicID.Validators[0].(func(string) error)
	// competencyrecordDescAttempts is the schema descriptor for attempts field.
	competencyrecordDescAttempts := competencyrecordFields[3].Descriptor()
	// competencyrecord.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	competencyrecord.AttemptsValidator = competencyrecordDescAttempts.Validators[0].(func(int) error)
	// competencyrecordDescCorrect is the schema descriptor for correct field.
	competencyrecordDescCorrect := competencyrecordFields[4].Descriptor()
	// competencyrecord.CorrectValidator is a validator for the "correct" field. It is called by the builders before save.
	competencyrecord.CorrectValidator = competencyrecordDescCorrect.Validators[0].(func(int) error)
	// competencyrecordDescIncorrect is the schema descriptor for incorrect field.
	competencyrecordDescIncorrect := competencyrecordFields[5].Descriptor()
	// competencyrecord.IncorrectValidator is a validator for the "incorrect" field. It is called by the builders before save.
	competencyrecord.IncorrectValidator = competencyrecordDescIncorrect.Validators[0].(func(int) error)
	// competencyrecordDescLastUpdatedAt is the schema descriptor for last_updated_at field.
	competencyrecordDescLastUpdatedAt := competencyrecordFields[6].Descriptor()
	// competencyrecord.DefaultLastUpdatedAt holds the default value on creation for the last_updated_at field.
	competencyrecord.DefaultLastUpdatedAt = competencyrecordDescLastUpdatedAt.Default.(func() time.Time)
	// competencyrecord.UpdateDefaultLastUpdatedAt holds the default value on update for the last_updated_at field.
	competencyrecord.UpdateDefaultLastUpdatedAt = competencyrecordDescLastUpdatedAt.UpdateDefault.(func() time.Time)
	examsessionFields := schema.ExamSession{}.Fields()
	_ = examsessionFields
	// examsessionDescSessionID is the schema descriptor for session_id field.
	examsessionDescSessionID := examsessionFields[0].Descriptor()
	// examsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	examsession.SessionIDValidator = examsessionDescSessionID.Validators[0].(func(string) error)
	// examsessionDescUserID is the schema descriptor for user_id field.
	examsessionDescUserID := examsessionFields[1].Descriptor()
	// examsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	examsession.UserIDValidator = examsessionDescUserID.Validators[0].(func(string) error)
	// examsessionDescCourseID is the schema descriptor for course_id field.
	examsessionDescCourseID := examsessionFields[2].Descriptor()
	// examsession.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	examsession.CourseIDValidator = examsessionDescCourseID.Validators[0].(func(string) error)
	// examsessionDescKind is the schema descriptor for kind field.
	examsessionDescKind := examsessionFields[3].Descriptor()
	// examsession.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	examsession.KindValidator = examsessionDescKind.Validators[0].(func(string) error)
	// examsessionDescTotal is the schema descriptor for total field.
	examsessionDescTotal := examsessionFields[5].Descriptor()
	// examsession.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	examsession.TotalValidator = examsessionDescTotal.Validators[0].(func(int) error)
	// examsessionDescCorrect is the schema descriptor for correct field.
	examsessionDescCorrect := examsessionFields[6].Descriptor()
	// examsession.CorrectValidator is a validator for the "correct" field. It is called by the builders before save.
	examsession.CorrectValidator = examsessionDescCorrect.Validators[0].(func(int) error)
	// examsessionDescCompleted is the schema descriptor for completed field.
	examsessionDescCompleted := examsessionFields[9].Descriptor()
	// examsession.DefaultCompleted holds the default value on creation for the completed field.
	examsession.DefaultCompleted = examsessionDescCompleted.Default.(bool)
	reviewcardFields := schema.ReviewCard{}.Fields()
	_ = reviewcardFields
	// reviewcardDescUserID is the schema descriptor for user_id field.
	reviewcardDescUserID := reviewcardFields[0].Descriptor()
	// reviewcard.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewcard.UserIDValidator = reviewcardDescUserID.Validators[0].(func(string) error)
	// reviewcardDescQuestionID is the schema descriptor for question_id field.
	reviewcardDescQuestionID := reviewcardFields[1].Descriptor()
	// reviewcard.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	reviewcard.QuestionIDValidator = reviewcardDescQuestionID.Validators[0].(func(string) error)
	// reviewcardDescRepetitions is the schema descriptor for repetitions field.
	reviewcardDescRepetitions := reviewcardFields[3].Descriptor()
	// reviewcard.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	reviewcard.RepetitionsValidator = reviewcardDescRepetitions.Validators[0].(func(int) error)
	// reviewcardDescIntervalDays is the schema descriptor for interval_days field.
	reviewcardDescIntervalDays := reviewcardFields[4].Descriptor()
	// reviewcard.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	reviewcard.IntervalDaysValidator = reviewcardDescIntervalDays.Validators[0].(func(int) error)
	// reviewcardDescTotalReviews is the schema descriptor for total_reviews field.
	reviewcardDescTotalReviews := reviewcardFields[7].Descriptor()
	// reviewcard.TotalReviewsValidator is a validator for the "total_reviews" field. It is called by the builders before save.
	reviewcard.TotalReviewsValidator = reviewcardDescTotalReviews.Validators[0].(func(int) error)
	// reviewcardDescSuccessfulReviews is the schema descriptor for successful_reviews field.
	reviewcardDescSuccessfulReviews := reviewcardFields[8].Descriptor()
	// reviewcard.SuccessfulReviewsValidator is a validator for the "successful_reviews" field. It is called by the builders before save.
	reviewcard.SuccessfulReviewsValidator = reviewcardDescSuccessfulReviews.Validators[0].(func(int) error)
}
