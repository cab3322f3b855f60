// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/devika/pmquest/ent/answerevent"
	"github.com/devika/pmquest/ent/heartevent"
	"github.com/devika/pmquest/ent/lessonevent"
	"github.com/devika/pmquest/ent/reviewevent"
	"github.com/devika/pmquest/ent/schema"
	"github.com/devika/pmquest/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescLessonID is the schema descriptor for lesson_id field.
	answereventDescLessonID := answereventFields[1].Descriptor()
	// answerevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	answerevent.LessonIDValidator = answereventDescLessonID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescXpAwarded is the schema descriptor for xp_awarded field.
	answereventDescXpAwarded := answereventFields[4].Descriptor()
	// answerevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	answerevent.DefaultXpAwarded = answereventDescXpAwarded.Default.(int)
	hearteventMixin := schema.HeartEvent{}.Mixin()
	hearteventMixinFields0 := hearteventMixin[0].Fields()
	_ = hearteventMixinFields0
	hearteventFields := schema.HeartEvent{}.Fields()
	_ = hearteventFields
	// hearteventDescTimestamp is the schema descriptor for timestamp field.
	hearteventDescTimestamp := hearteventMixinFields0[1].Descriptor()
	// heartevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	heartevent.DefaultTimestamp = hearteventDescTimestamp.Default.(func() time.Time)
	// hearteventDescReason is the schema descriptor for reason field.
	hearteventDescReason := hearteventFields[2].Descriptor()
	// heartevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	heartevent.ReasonValidator = hearteventDescReason.Validators[0].(func(string) error)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonevent.SessionIDValidator = lessoneventDescSessionID.Validators[0].(func(string) error)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[1].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescAction is the schema descriptor for action field.
	lessoneventDescAction := lessoneventFields[3].Descriptor()
	// lessonevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	lessonevent.ActionValidator = lessoneventDescAction.Validators[0].(func(string) error)
	// lessoneventDescXpEarned is the schema descriptor for xp_earned field.
	lessoneventDescXpEarned := lessoneventFields[4].Descriptor()
	// lessonevent.DefaultXpEarned holds the default value on creation for the xp_earned field.
	lessonevent.DefaultXpEarned = lessoneventDescXpEarned.Default.(int)
	// lessoneventDescCorrectCount is the schema descriptor for correct_count field.
	lessoneventDescCorrectCount := lessoneventFields[5].Descriptor()
	// lessonevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	lessonevent.DefaultCorrectCount = lessoneventDescCorrectCount.Default.(int)
	// lessoneventDescQuestionCount is the schema descriptor for question_count field.
	lessoneventDescQuestionCount := lessoneventFields[6].Descriptor()
	// lessonevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	lessonevent.DefaultQuestionCount = lessoneventDescQuestionCount.Default.(int)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescCardID is the schema descriptor for card_id field.
	revieweventDescCardID := revieweventFields[0].Descriptor()
	// reviewevent.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	reviewevent.CardIDValidator = revieweventDescCardID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
