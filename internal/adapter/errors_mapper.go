// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status := http.StatusText(resp.StatusCode())
	if status == "" {
		// "418 I'm a teapot" -> "I'm a teapot"
		_, status, _ = strings.Cut(resp.Status(), " ")
	}

	return &RequestError{
		StatusCode: resp.StatusCode(),
		Status:     status,
		Body:       strings.TrimSpace(string(resp.Body())),
	}
}

func isJSON(resp *resty.Response) bool {
	return strings.Contains(strings.ToLower(resp.Header().Get("Content-Type")), "application/json")
}
