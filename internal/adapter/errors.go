// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
)

// FallbackFailureMessage is used when a failed response carries no text.
const FallbackFailureMessage = "Failed to generate"

var (
	// ErrRequestFailed matches every [*RequestFailedError].
	ErrRequestFailed = errors.New("request failed")
	// ErrNetwork matches every [*NetworkError].
	ErrNetwork = errors.New("network error")
	// ErrInvalidSubmission is returned when a submission file cannot be
	// opened before the request is sent.
	ErrInvalidSubmission = errors.New("invalid submission")
)

// RequestFailedError is returned when the server responds with a non-2xx
// status. Text is the response body or [FallbackFailureMessage].
type RequestFailedError struct {
	StatusCode int
	Text       string
}

func (e *RequestFailedError) Error() string {
	return e.Text
}

// Is reports whether target is [ErrRequestFailed].
func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// NetworkError is returned when the request could not complete.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrNetwork].
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}
