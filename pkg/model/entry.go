package model

import "entrycheck/pkg/sanitizer"

type EntryKind string

const (
	KindCode  EntryKind = "code"
	KindPhone EntryKind = "phone"
)

// DefaultField is the human-readable field name used in messages when the
// caller does not provide one.
func (k EntryKind) DefaultField() string {
	switch k {
	case KindCode:
		return "Confirmation code"
	case KindPhone:
		return "Phone number"
	default:
		return "Entry"
	}
}

// EntryRequest is one raw value typed by a user. Value is left untyped so that
// non-string JSON values reach the parser and are reported as blank.
type EntryRequest struct {
	Kind  EntryKind `json:"kind" validate:"required,oneof=code phone"`
	Field string    `json:"field" validate:"omitempty,max=64"`
	Value any       `json:"value"`
}

// ValueRequest is the body of the single-kind endpoints, where the kind comes
// from the route.
type ValueRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

func (v ValueRequest) WithKind(kind EntryKind) EntryRequest {
	return EntryRequest{Kind: kind, Field: v.Field, Value: v.Value}
}

type BatchRequest struct {
	Entries []EntryRequest `json:"entries" validate:"required,min=1,dive"`
}

type EntryResponse struct {
	Kind     EntryKind         `json:"kind"`
	Field    string            `json:"field"`
	Valid    bool              `json:"valid"`
	Problem  sanitizer.Problem `json:"problem,omitempty"`
	Message  string            `json:"message,omitempty"`
	Region   string            `json:"region,omitempty"`
	Timezone string            `json:"timezone,omitempty"`
	Result   any               `json:"result"`
}

type BatchResponse struct {
	Entries []EntryResponse `json:"entries"`
}
