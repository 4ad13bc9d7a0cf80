// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a [*RequestFailedError]
// carrying the body text, or [FallbackFailureMessage] when the body is empty.
// It returns nil for 2xx responses.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	text := string(resp.Body())
	if text == "" {
		text = FallbackFailureMessage
	}

	return &RequestFailedError{StatusCode: resp.StatusCode(), Text: text}
}
