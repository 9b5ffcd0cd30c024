package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/campusconnect/studia/internal/store"
)

// loggingProvider records every gateway call as a durable event.
type loggingProvider struct {
	inner  Provider
	name   string
	events store.EventRepo
}

// WithLogging wraps a Provider with event logging. name is the backend
// name recorded on each event ("anthropic", "openai", "gemini").
func WithLogging(p Provider, name string, events store.EventRepo) Provider {
	return &loggingProvider{inner: p, name: name, events: events}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed audit write must not fail the request itself.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func renderRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		if m.ImageDataURI != "" {
			fmt.Fprintf(&b, "\n[image: %d bytes]", len(m.ImageDataURI))
		}
		b.WriteString("\n\n")
	}
	if req.Schema != nil {
		fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
	}
	return b.String()
}
