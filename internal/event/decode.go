package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload converts a published payload into its concrete type.
// In-process subscribers receive the payload struct itself and hit the type
// assertion; payloads replayed from a dead-letter file arrive as generic
// JSON maps and take the marshal round trip instead.
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
