package templates

import "net/http"

// ErrorPageTitle returns the document title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	switch normalizeErrorStatus(statusCode) {
	case http.StatusNotFound:
		return T(loc, "core.error.not_found.title")
	case http.StatusServiceUnavailable:
		return T(loc, "core.error.unavailable.title")
	default:
		return T(loc, "core.error.internal.title")
	}
}

func errorBody(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "core.error.not_found.body")
	}
	return T(loc, "core.error.internal.body")
}

func normalizeErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusServiceUnavailable:
		return statusCode
	}
	return http.StatusInternalServerError
}
