package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one submitted challenge result.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Practice session this attempt belongs to"),
		field.String("kind").
			NotEmpty().
			Comment("Challenge kind, e.g. base_conversion"),
		field.Int("source_base").
			Comment("Base the value was presented in"),
		field.Int("target_base").
			Comment("Base the learner converted to"),
		field.String("value").
			NotEmpty().
			Comment("The value shown, rendered in the source base"),
		field.String("level").
			NotEmpty().
			Comment("Difficulty level the challenge was generated at"),
		field.Float("complexity").
			Comment("Cognitive complexity score, 0-10"),
		field.String("user_answer").
			Comment("What the learner entered"),
		field.Bool("correct").
			Comment("Whether the answer matched exactly"),
		field.Float("solving_time").
			Comment("Seconds to answer"),
		field.Float("error_rate").
			Comment("0 or 1 under binary grading"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("level"),
		index.Fields("correct"),
	}
}
