// Package models defines the core data structures for coldcalc.
//
// It includes session state, engineering parameters, calculation results,
// and messaging types shared across modules.
package models

import (
	"errors"
	"time"
)

// Language identifies the localization used for a conversation.
type Language string

const (
	// LanguageEnglish is the fallback language for all user-facing text.
	LanguageEnglish Language = "en"
	// LanguageTurkish enables the Turkish prompt and synonym sets.
	LanguageTurkish Language = "tr"
	// LanguageGerman enables the German prompt and synonym sets.
	LanguageGerman Language = "de"
)

// IsValidLanguage checks whether the given language tag is supported.
func IsValidLanguage(l Language) bool {
	switch l {
	case LanguageEnglish, LanguageTurkish, LanguageGerman:
		return true
	default:
		return false
	}
}

// Error variables for better error handling and testability
var (
	// ErrUnsupportedTemperature is raised by the calculation engine when the
	// storage temperature is outside the fixed supported set. It is an engine
	// invariant, not merely a UI constraint, so compile/calculate re-check it
	// even though the validator already enforces membership.
	ErrUnsupportedTemperature = errors.New("storage temperature not in supported set")
	// ErrSessionNotFound indicates a session lookup for an unknown user.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidDimensions indicates non-positive room dimensions reached the engine.
	ErrInvalidDimensions = errors.New("room dimensions must be positive")
	// ErrServiceStopped indicates an operation on a stopped messaging service.
	ErrServiceStopped = errors.New("messaging service has been stopped")
	// ErrEmptyRecipient indicates a send with no recipient.
	ErrEmptyRecipient = errors.New("recipient cannot be empty")
	// ErrEmptyBody indicates a send with no message body.
	ErrEmptyBody = errors.New("message body cannot be empty")
)

// MessageStatus represents the delivery status of an outgoing message.
type MessageStatus string

const (
	// MessageStatusSent indicates the message was sent.
	MessageStatusSent MessageStatus = "sent"
	// MessageStatusDelivered indicates the message was delivered.
	MessageStatusDelivered MessageStatus = "delivered"
	// MessageStatusRead indicates the message was read.
	MessageStatusRead MessageStatus = "read"
	// MessageStatusFailed indicates the message failed to send.
	MessageStatusFailed MessageStatus = "failed"
)

// Receipt records a delivery status change for an outgoing message.
type Receipt struct {
	To     string        `json:"to"`
	Status MessageStatus `json:"status"`
	Time   int64         `json:"time"`
}

// Response represents an incoming message from a user.
type Response struct {
	From string `json:"from"`
	Body string `json:"body"`
	Time int64  `json:"time"`
}

// ValueKind tags the typed payload carried by an AnswerValue.
type ValueKind string

const (
	// ValueKindNumber marks a numeric answer (temperature, mass, count).
	ValueKindNumber ValueKind = "number"
	// ValueKindText marks a categorical or free-text answer.
	ValueKindText ValueKind = "text"
	// ValueKindDimensions marks a parsed room geometry answer.
	ValueKindDimensions ValueKind = "dimensions"
	// ValueKindBool marks a yes/no answer.
	ValueKindBool ValueKind = "bool"
)

// Dimensions holds parsed room geometry in meters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Volume returns the room volume in cubic meters.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// FloorArea returns the floor area in square meters.
func (d Dimensions) FloorArea() float64 {
	return d.Length * d.Width
}

// AnswerValue is the typed result of extracting and validating one answer.
type AnswerValue struct {
	Kind       ValueKind   `json:"kind"`
	Number     float64     `json:"number,omitempty"`
	Text       string      `json:"text,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	Flag       bool        `json:"flag,omitempty"`
}

// NumberValue builds a numeric AnswerValue.
func NumberValue(n float64) AnswerValue {
	return AnswerValue{Kind: ValueKindNumber, Number: n}
}

// TextValue builds a categorical AnswerValue.
func TextValue(s string) AnswerValue {
	return AnswerValue{Kind: ValueKindText, Text: s}
}

// DimensionsValue builds a geometry AnswerValue.
func DimensionsValue(d Dimensions) AnswerValue {
	return AnswerValue{Kind: ValueKindDimensions, Dimensions: &d}
}

// BoolValue builds a yes/no AnswerValue.
func BoolValue(b bool) AnswerValue {
	return AnswerValue{Kind: ValueKindBool, Flag: b}
}

// Answer stores one accepted answer: the raw utterance, the parsed value,
// and when it was given.
type Answer struct {
	Raw       string      `json:"raw"`
	Value     AnswerValue `json:"value"`
	Timestamp time.Time   `json:"timestamp"`
}

// Session is the per-user flow state. It is owned exclusively by the flow
// coordinator while a consultation is active; the session store collaborator
// guarantees serialized access per user.
type Session struct {
	UserID      string            `json:"user_id"`
	Language    Language          `json:"language"`
	Active      bool              `json:"active"`
	CatalogName string            `json:"catalog"`
	CurrentStep int               `json:"current_step"`
	Answers     map[string]Answer `json:"answers,omitempty"` // keyed by field ID
	StartedAt   time.Time         `json:"started_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
