package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Collection is one whole-collection snapshot: the JSON payload for a
// (course, learner, name) key. Writes replace the payload wholesale.
type Collection struct {
	ent.Schema
}

func (Collection) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			Default("").
			Comment("Owning course; empty for the course catalog itself"),
		field.String("learner_id").
			Default("").
			Comment("Owning learner for per-learner collections; empty otherwise"),
		field.String("name").
			NotEmpty().
			Comment("Collection name: challenges, completions, prizes, claims, ..."),
		field.Bytes("data").
			Comment("The collection payload as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last replacement time"),
	}
}

func (Collection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "learner_id", "name").Unique(),
	}
}
