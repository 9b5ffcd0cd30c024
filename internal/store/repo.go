package store

import (
	"context"
	"encoding/json"
	"time"
)

// Key addresses one collection snapshot. CourseID scopes everything;
// LearnerID is set for per-learner collections (completions, claims)
// and empty for course-wide ones (challenges, prizes, roster). The
// course-catalog collection leaves both empty.
type Key struct {
	CourseID  string
	LearnerID string
	Name      string
}

// Collections is the persistence boundary of the engine: an opaque
// key-value store of whole-collection snapshots. Save replaces the
// entire collection for the key; Load returns the last written
// payload, or nil when nothing was ever written. No partial updates,
// no cross-key transactions.
type Collections interface {
	Save(ctx context.Context, key Key, data json.RawMessage) error
	Load(ctx context.Context, key Key) (json.RawMessage, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures one gateway call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored gateway call event.
type LLMRequestEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PointEventData captures one point award.
type PointEventData struct {
	CourseID   string
	LearnerID  string
	Points     int
	TotalAfter int
	Reason     string
}

// PointEventRecord is a stored point award event.
type PointEventRecord struct {
	Sequence   int64
	Timestamp  time.Time
	CourseID   string
	LearnerID  string
	Points     int
	TotalAfter int
	Reason     string
}

// EventRepo is the append-only audit trail: gateway traffic and point
// awards. Collection snapshots stay the source of truth for state;
// events exist for inspection and history.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	// GetLLMEvent returns one event by row ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	AppendPointAward(ctx context.Context, data PointEventData) error
	QueryPointAwards(ctx context.Context, opts QueryOpts) ([]PointEventRecord, error)
}
