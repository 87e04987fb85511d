package templates

import (
	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
)

var commentPolicy = bluemonday.UGCPolicy()

// SanitizeComment strips anything from a review comment that the UGC
// policy does not allow.
func SanitizeComment(comment string) string {
	return commentPolicy.Sanitize(comment)
}

func sanitizedComment(comment string) templ.Component {
	return templ.Raw(SanitizeComment(comment))
}
