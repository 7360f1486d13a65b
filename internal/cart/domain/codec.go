package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyPayload is returned by Decode for blank input.
var ErrEmptyPayload = errors.New("cart: empty payload")

// Encode serialises state for the persistence backend.
func Encode(state State) (string, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("cart: encode: %w", err)
	}
	return string(raw), nil
}

// Decode parses a persisted state. Anything other than a JSON object is
// rejected, including the literal null.
func Decode(value string) (State, error) {
	raw := bytes.TrimSpace([]byte(value))
	if len(raw) == 0 {
		return State{}, ErrEmptyPayload
	}
	if raw[0] != '{' {
		return State{}, fmt.Errorf("cart: decode: expected JSON object")
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return State{}, fmt.Errorf("cart: decode: %w", err)
	}
	if state.Items == nil {
		state.Items = []Line{}
	}
	return state, nil
}
