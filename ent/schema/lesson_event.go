package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records lesson session lifecycle events (start/complete).
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Catalog lesson ID"),
		field.Int("day").
			Comment("Journey day index of the lesson"),
		field.String("action").
			NotEmpty().
			Comment("start or complete"),
		field.Int("xp_earned").
			Default(0).
			Comment("XP earned (on complete only)"),
		field.Int("correct_count").
			Default(0).
			Comment("Correct answers (on complete only)"),
		field.Int("question_count").
			Default(0).
			Comment("Questions answered (on complete only)"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("action"),
	}
}
