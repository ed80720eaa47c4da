// Package util contains any functions used across the application that don't match
// any other package
package util

import (
	"net/http"
	"strings"
)

// RequestBaseURL rebuilds scheme://host of the URL the client used. The
// X-Forwarded-Proto header only counts when the request came through a
// trusted proxy, and only http and https are accepted from it.
func RequestBaseURL(r *http.Request, trustForwarded bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if proto := r.Header.Get("X-Forwarded-Proto"); trustForwarded && proto != "" {
		switch p := strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0])); p {
		case "http", "https":
			scheme = p
		}
	}

	return scheme + "://" + r.Host
}
