package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HeartEvent records every change to the heart balance.
type HeartEvent struct {
	ent.Schema
}

func (HeartEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HeartEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Set when the change happened inside a lesson session"),
		field.Int("delta").
			Comment("Signed change to the heart balance"),
		field.String("reason").
			NotEmpty().
			Comment("wrong-answer, topics-studied, or refill"),
		field.Int("balance").
			Comment("Heart balance after the change"),
	}
}

func (HeartEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reason"),
	}
}
