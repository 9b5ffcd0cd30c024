package llm

import (
	"encoding/base64"
	"testing"
)

func TestParseDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))
	mediaType, b64, raw, err := ParseDataURI("data:image/png;base64," + payload)
	if err != nil {
		t.Fatalf("ParseDataURI: %v", err)
	}
	if mediaType != "image/png" {
		t.Errorf("mediaType = %q, want image/png", mediaType)
	}
	if b64 != payload {
		t.Errorf("b64 payload mismatch")
	}
	if string(raw) != "fake-png-bytes" {
		t.Errorf("raw = %q", raw)
	}
}

func TestParseDataURIRejectsPlainURL(t *testing.T) {
	if _, _, _, err := ParseDataURI("https://example.com/photo.png"); err == nil {
		t.Fatal("want error for non-data URI")
	}
}

func TestParseDataURIRejectsUnencoded(t *testing.T) {
	if _, _, _, err := ParseDataURI("data:text/plain,hello"); err == nil {
		t.Fatal("want error for non-base64 data URI")
	}
}
