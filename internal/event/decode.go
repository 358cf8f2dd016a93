package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload converts a bus payload into the concrete type T.
// Payloads published in-process are already the struct the publisher
// built, so the type assertion is the fast path; the JSON round-trip
// covers payloads re-read from a serialized form such as the
// dead-letter log.
func DecodePayload[T any](payload any) (T, error) {
	if typed, ok := payload.(T); ok {
		return typed, nil
	}

	var decoded T
	raw, err := json.Marshal(payload)
	if err != nil {
		return decoded, fmt.Errorf("encode payload: %w", err)
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return decoded, fmt.Errorf("decode payload: %w", err)
	}
	return decoded, nil
}
