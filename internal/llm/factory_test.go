package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/campusconnect/studia/internal/store"
)

// deadlineProvider records whether Generate ran under a deadline.
type deadlineProvider struct {
	hadDeadline bool
	deadline    time.Time
}

func (d *deadlineProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	d.deadline, d.hadDeadline = ctx.Deadline()
	return &Response{Content: json.RawMessage(`{"ok":true}`), StopReason: "end"}, nil
}

func (d *deadlineProvider) ModelID() string { return "deadline" }

func TestNewProviderRejectsMissingAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	cfg.Anthropic.APIKey = ""

	if _, err := NewProvider(context.Background(), cfg, store.NopEvents{}); err == nil {
		t.Fatal("want error for anthropic provider without an API key")
	}
}

func TestNewProviderRejectsUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "oracle"

	if _, err := NewProvider(context.Background(), cfg, store.NopEvents{}); err == nil {
		t.Fatal("want error for unknown provider")
	}
}

func TestWithTimeoutSetsDeadline(t *testing.T) {
	inner := &deadlineProvider{}
	p := WithTimeout(inner, 45*time.Second)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !inner.hadDeadline {
		t.Fatal("Generate should run under a deadline")
	}
	if remaining := time.Until(inner.deadline); remaining > 45*time.Second {
		t.Errorf("deadline %v out, want at most 45s", remaining)
	}
}

func TestWithTimeoutZeroLeavesProviderBare(t *testing.T) {
	inner := &deadlineProvider{}
	p := WithTimeout(inner, 0)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if inner.hadDeadline {
		t.Error("zero timeout should not impose a deadline")
	}
}
