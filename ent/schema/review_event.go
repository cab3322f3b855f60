package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a spaced-repetition review: the recall rating and the
// schedule the card ended up with.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_id").
			NotEmpty().
			Comment("Catalog card ID"),
		field.Int("quality").
			Comment("Recall rating 1-5"),
		field.Float("interval_days").
			Comment("New review interval in days"),
		field.Float("ease_factor").
			Comment("New ease factor"),
		field.Int("repetitions").
			Comment("Consecutive successful reviews after this one"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
		index.Fields("quality"),
	}
}
