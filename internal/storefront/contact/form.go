// Package contact validates contact-us submissions.
package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether email looks like local@domain.tld.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Field names a form field.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldRequest Field = "request"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailInvalid    = errors.New("email is invalid")
	ErrRequestRequired = errors.New("request is required")
)

// Form is a contact submission.
type Form struct {
	Name    string
	Email   string
	Request string
}

// Normalize trims every field.
func (f Form) Normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Request: strings.TrimSpace(f.Request),
	}
}

// ValidationError lists the fields that failed, in form order.
type ValidationError struct {
	Fields []Field
	Errs   map[Field]error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %v", field, e.Errs[field]))
	}
	return "invalid contact form: " + strings.Join(parts, "; ")
}

// Has reports whether field failed.
func (e *ValidationError) Has(field Field) bool {
	if e == nil {
		return false
	}
	_, ok := e.Errs[field]
	return ok
}

// Unwrap exposes the per-field errors to errors.Is.
func (e *ValidationError) Unwrap() []error {
	out := make([]error, 0, len(e.Fields))
	for _, field := range e.Fields {
		out = append(out, e.Errs[field])
	}
	return out
}

// Validate returns the normalized form, or a *ValidationError.
func Validate(f Form) (Form, error) {
	f = f.Normalize()
	verr := &ValidationError{Errs: map[Field]error{}}
	add := func(field Field, err error) {
		verr.Fields = append(verr.Fields, field)
		verr.Errs[field] = err
	}
	if f.Name == "" {
		add(FieldName, ErrNameRequired)
	}
	if !ValidateEmail(f.Email) {
		add(FieldEmail, ErrEmailInvalid)
	}
	if f.Request == "" {
		add(FieldRequest, ErrRequestRequired)
	}
	if len(verr.Fields) > 0 {
		return f, verr
	}
	return f, nil
}
