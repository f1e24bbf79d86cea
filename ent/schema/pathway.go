package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Pathway is a named, learner-defined practice track. Names are
// unique; the level records where the pathway starts a session.
type Pathway struct {
	ent.Schema
}

func (Pathway) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty().
			Comment("Unique pathway name, the CRUD key"),
		field.String("description").
			Optional().
			Comment("Free-form description"),
		field.String("level").
			Default("BEGINNER").
			Comment("Difficulty level the pathway starts at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
