package bulletin

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingContent is returned when the envelope has no Content field
var ErrMissingContent = errors.New("bulletin: envelope has no Content field")

// Envelope is the JSON document served by the app content API
type Envelope struct {
	Content *string `json:"Content"`
}

// DecodeEnvelope extracts the bulletin HTML from the JSON envelope
func DecodeEnvelope(data []byte) (string, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", fmt.Errorf("bulletin: decode envelope: %w", err)
	}
	if env.Content == nil {
		return "", ErrMissingContent
	}
	return *env.Content, nil
}
