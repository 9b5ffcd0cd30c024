package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PointEvent records a point award: the audit trail behind a learner's
// cumulative total. Awards only ever add points.
type PointEvent struct {
	ent.Schema
}

func (PointEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PointEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").NotEmpty(),
		field.String("learner_id").NotEmpty(),
		field.Int("points").
			Positive().
			Comment("Points added by this award"),
		field.Int("total_after").
			Comment("Learner's cumulative total after the award"),
		field.String("reason").
			NotEmpty().
			Comment("Human-readable reason, e.g. the completed challenge title"),
	}
}

func (PointEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "learner_id"),
	}
}
