// Package models defines the wire shapes of the clusterman API: entity
// records, their collection envelopes, and the structured error response.
// Every collection envelope nests its elements under a field named "items"
// in both JSON and XML, with per-type XML element names.
package models

import (
	"encoding/json"
	"errors"

	humane "github.com/sierrasoftworks/humane-errors-go"
)

// ErrorResponse is the serializable form of a humane.Error. It is the body of
// every non-2xx API response.
// @Description Structured error response with contextual advice
type ErrorResponse struct {
	// Primary error message.
	Message string `json:"message"`

	// Suggestions that may help resolve the error.
	Advice []string `json:"advice,omitempty"`

	// Nested error that caused this one.
	Cause *ErrorResponse `json:"cause,omitempty" swaggerignore:"true"`

	// HTTP status code, never serialized.
	StatusCode int `json:"-"`
}

// NewErrorResponse wraps an optional cause under a new top-level message.
func NewErrorResponse(message string, cause error) *ErrorResponse {
	if cause == nil {
		return FromHumaneError(humane.New(message))
	}
	return FromHumaneError(humane.Wrap(cause, message))
}

// FromHumaneError converts a humane.Error, including its cause chain, into
// an ErrorResponse ready for JSON serialization.
func FromHumaneError(err humane.Error) *ErrorResponse {
	if err == nil {
		return nil
	}

	resp := &ErrorResponse{
		Message: err.Error(),
		Advice:  err.Advice(),
	}

	if cause := err.Cause(); cause != nil {
		var humaneCause humane.Error
		if errors.As(cause, &humaneCause) {
			resp.Cause = FromHumaneError(humaneCause)
		} else {
			resp.Cause = &ErrorResponse{Message: cause.Error()}
		}
	}

	return resp
}

// AsHumaneError rebuilds the humane.Error this response was derived from,
// preserving the cause chain and advice.
func (e *ErrorResponse) AsHumaneError() humane.Error {
	if e == nil {
		return nil
	}

	if e.Cause != nil {
		return humane.Wrap(e.Cause.AsHumaneError(), e.Message, e.Advice...)
	}
	return humane.New(e.Message, e.Advice...)
}

// MarshalJSON implements json.Marshaler.
func (e *ErrorResponse) MarshalJSON() ([]byte, error) {
	// Alias avoids infinite recursion through this method.
	type Alias ErrorResponse
	return json.Marshal((*Alias)(e))
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ErrorResponse) UnmarshalJSON(data []byte) error {
	type Alias ErrorResponse
	return json.Unmarshal(data, (*Alias)(e))
}
