// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CollectionsColumns holds the columns for the "collections" table.
	CollectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString, Default: ""},
		{Name: "learner_id", Type: field.TypeString, Default: ""},
		{Name: "name", Type: field.TypeString},
		{Name: "data", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CollectionsTable holds the schema information for the "collections" table.
	CollectionsTable = &schema.Table{
		Name:       "collections",
		Columns:    CollectionsColumns,
		PrimaryKey: []*schema.Column{CollectionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "collection_course_id_learner_id_name",
				Unique:  true,
				Columns: []*schema.Column{CollectionsColumns[1], CollectionsColumns[2], CollectionsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PointEventsColumns holds the columns for the "point_events" table.
	PointEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt},
		{Name: "total_after", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
	}
	// PointEventsTable holds the schema information for the "point_events" table.
	PointEventsTable = &schema.Table{
		Name:       "point_events",
		Columns:    PointEventsColumns,
		PrimaryKey: []*schema.Column{PointEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pointevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[1]},
			},
			{
				Name:    "pointevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[2]},
			},
			{
				Name:    "pointevent_course_id_learner_id",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[3], PointEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CollectionsTable,
		LlmRequestEventsTable,
		PointEventsTable,
	}
)

func init() {
}
