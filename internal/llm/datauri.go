package llm

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ParseDataURI splits a "data:<mime>;base64,<payload>" string into its
// media type, base64 payload, and decoded bytes.
func ParseDataURI(uri string) (mediaType, b64 string, raw []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", "", nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", nil, fmt.Errorf("malformed data URI: missing payload")
	}
	mediaType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", "", nil, fmt.Errorf("data URI is not base64-encoded")
	}
	if mediaType == "" {
		mediaType = "text/plain"
	}
	raw, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", "", nil, fmt.Errorf("decode data URI payload: %w", err)
	}
	return mediaType, payload, raw, nil
}
