package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered quiz question within a lesson session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to LessonEvent"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson the question belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Catalog question ID"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("xp_awarded").
			Default(0).
			Comment("XP earned (0 for wrong answers)"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
