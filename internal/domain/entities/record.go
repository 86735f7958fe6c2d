package entities

import (
	"encoding/json"
	"time"
)

// Record is a named JSON document kept by a record store.
type Record struct {
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
}
