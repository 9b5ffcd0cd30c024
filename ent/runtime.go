// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/campusconnect/studia/ent/collection"
	"github.com/campusconnect/studia/ent/llmrequestevent"
	"github.com/campusconnect/studia/ent/pointevent"
	"github.com/campusconnect/studia/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	collectionFields := schema.Collection{}.Fields()
	_ = collectionFields
	// collectionDescCourseID is the schema descriptor for course_id field.
	collectionDescCourseID := collectionFields[0].Descriptor()
	// collection.DefaultCourseID holds the default value on creation for the course_id field.
	collection.DefaultCourseID = collectionDescCourseID.Default.(string)
	// collectionDescLearnerID is the schema descriptor for learner_id field.
	collectionDescLearnerID := collectionFields[1].Descriptor()
	// collection.DefaultLearnerID holds the default value on creation for the learner_id field.
	collection.DefaultLearnerID = collectionDescLearnerID.Default.(string)
	// collectionDescName is the schema descriptor for name field.
	collectionDescName := collectionFields[2].Descriptor()
	// collection.NameValidator is a validator for the "name" field. It is called by the builders before save.
	collection.NameValidator = collectionDescName.Validators[0].(func(string) error)
	// collectionDescUpdatedAt is the schema descriptor for updated_at field.
	collectionDescUpdatedAt := collectionFields[4].Descriptor()
	// collection.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	collection.DefaultUpdatedAt = collectionDescUpdatedAt.Default.(func() time.Time)
	// collection.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	collection.UpdateDefaultUpdatedAt = collectionDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	pointeventMixin := schema.PointEvent{}.Mixin()
	pointeventMixinFields0 := pointeventMixin[0].Fields()
	_ = pointeventMixinFields0
	pointeventFields := schema.PointEvent{}.Fields()
	_ = pointeventFields
	// pointeventDescTimestamp is the schema descriptor for timestamp field.
	pointeventDescTimestamp := pointeventMixinFields0[1].Descriptor()
	// pointevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pointevent.DefaultTimestamp = pointeventDescTimestamp.Default.(func() time.Time)
	// pointeventDescCourseID is the schema descriptor for course_id field.
	pointeventDescCourseID := pointeventFields[0].Descriptor()
	// pointevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	pointevent.CourseIDValidator = pointeventDescCourseID.Validators[0].(func(string) error)
	// pointeventDescLearnerID is the schema descriptor for learner_id field.
	pointeventDescLearnerID := pointeventFields[1].Descriptor()
	// pointevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	pointevent.LearnerIDValidator = pointeventDescLearnerID.Validators[0].(func(string) error)
	// pointeventDescPoints is the schema descriptor for points field.
	pointeventDescPoints := pointeventFields[2].Descriptor()
	// pointevent.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	pointevent.PointsValidator = pointeventDescPoints.Validators[0].(func(int) error)
	// pointeventDescReason is the schema descriptor for reason field.
	pointeventDescReason := pointeventFields[4].Descriptor()
	// pointevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	pointevent.ReasonValidator = pointeventDescReason.Validators[0].(func(string) error)
}
