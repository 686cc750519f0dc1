package try

import (
	"github.com/goccy/go-json"
)

type outcomeJSON struct {
	Success bool   `json:"success"`
	Value   any    `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MarshalJSON renders a Success as {"success":true,"value":...} and a
// Failure as {"success":false,"error":"..."}.
func (t Try[V]) MarshalJSON() ([]byte, error) {
	if t.isSuccess {
		return json.Marshal(outcomeJSON{Success: true, Value: t.value})
	}
	return json.Marshal(outcomeJSON{Error: t.cause().Error()})
}

// MarshalJSON renders a present Option as its value and an empty one as null.
func (o Option[V]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
