package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int
	err      error
	calls    int
}

func (f *flakyProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return &Response{Content: json.RawMessage(`{"ok":true}`), StopReason: "end"}, nil
}

func (f *flakyProvider) ModelID() string { return "flaky" }

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryRecoversFromTransientError(t *testing.T) {
	inner := &flakyProvider{failures: 2, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, fastRetry(3))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp == nil || inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrProviderUnavailable{}}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetryInvalidResponseOnlyOnce(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrInvalidResponse{Err: errors.New("bad json")}}
	p := WithRetry(inner, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2 (one retry for invalid output)", inner.calls)
	}
}

func TestRetryDoesNotRetryMaxTokens(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrMaxTokensExceeded{}}
	p := WithRetry(inner, fastRetry(3))

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("want error")
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &flakyProvider{failures: 10, err: context.Canceled}
	p := WithRetry(inner, fastRetry(3))

	if _, err := p.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}
