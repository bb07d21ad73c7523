package imagex

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DefaultMIME is assumed when a data URI carries no media type header.
const DefaultMIME = "image/jpeg"

// ParseDataURI splits a data URI into its decoded payload and MIME type.
// A bare base64 string (no "data:" header) is accepted and treated as
// DefaultMIME, matching what older app versions persisted.
func ParseDataURI(uri string) ([]byte, string, error) {
	mime := DefaultMIME
	payload := uri

	if strings.HasPrefix(uri, "data:") {
		head, rest, ok := strings.Cut(uri, ",")
		if !ok {
			return nil, "", fmt.Errorf("malformed data uri")
		}
		payload = rest

		meta := strings.TrimPrefix(head, "data:")
		meta = strings.TrimSuffix(meta, ";base64")
		if meta != "" {
			mime = meta
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	return data, mime, nil
}

// EncodeDataURI wraps raw bytes into a base64 data URI with the given MIME type.
func EncodeDataURI(data []byte, mime string) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
