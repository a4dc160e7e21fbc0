package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// FieldErrors accumulates field-level failures while an input is parsed.
// Parse helpers record an error and return the zero value on failure.
type FieldErrors []FieldError

// Add records a failure for field.
func (e *FieldErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Err returns nil when nothing was recorded, otherwise a *ValidationError.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return NewValidationErrors(e)
}

// RequiredID parses a reference to an existing row. A blank value is
// "required"; a malformed one cannot name any row and is an invalid choice.
func (e *FieldErrors) RequiredID(field, raw string) uuid.UUID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		e.Add(field, MsgRequired)
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		e.Add(field, MsgInvalidChoice)
		return uuid.Nil
	}
	return id
}

// OptionalID is RequiredID that accepts a blank value as nil.
func (e *FieldErrors) OptionalID(field, raw string) *uuid.UUID {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	id := e.RequiredID(field, raw)
	if id == uuid.Nil {
		return nil
	}
	return &id
}

// RequiredDate parses a YYYY-MM-DD calendar date (UTC midnight).
func (e *FieldErrors) RequiredDate(field, raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		e.Add(field, MsgRequired)
		return time.Time{}
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		e.Add(field, MsgInvalidDate)
		return time.Time{}
	}
	return d
}

// Text trims raw and enforces presence (when required) and a rune limit (when max > 0).
func (e *FieldErrors) Text(field, raw string, required bool, max int) string {
	s := strings.TrimSpace(raw)
	if required && s == "" {
		e.Add(field, MsgRequired)
		return ""
	}
	if n := utf8.RuneCountInString(s); max > 0 && n > max {
		e.Add(field, fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", max, n))
	}
	return s
}

// Bundle parses a bundle type. Blank yields nil, or a required error when required.
func (e *FieldErrors) Bundle(field, raw string, required bool) *BundleType {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			e.Add(field, MsgRequired)
		}
		return nil
	}
	bt := BundleType(raw)
	if !bt.IsValid() {
		e.Add(field, MsgInvalidChoice)
		return nil
	}
	return &bt
}

// TriState parses "", "true" or "false" into nil, true or false.
func (e *FieldErrors) TriState(field, raw string) *bool {
	switch strings.TrimSpace(raw) {
	case "":
		return nil
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	e.Add(field, MsgInvalidChoice)
	return nil
}
