// Package errors classifies storefront handler failures so one writer can
// choose the status code and the copy shown to the visitor.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies a failure.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindNotFound
	KindConflict
	KindUnavailable
)

var kinds = [...]struct {
	name   string
	status int
}{
	KindUnknown:      {"unknown", http.StatusInternalServerError},
	KindInvalidInput: {"invalid_input", http.StatusBadRequest},
	KindNotFound:     {"not_found", http.StatusNotFound},
	KindConflict:     {"conflict", http.StatusConflict},
	KindUnavailable:  {"unavailable", http.StatusServiceUnavailable},
}

func (k Kind) String() string {
	if int(k) >= len(kinds) {
		return kinds[KindUnknown].name
	}
	return kinds[k].name
}

// Status is the response code for k. Kinds outside the table are 500s.
func (k Kind) Status() int {
	if int(k) >= len(kinds) {
		return http.StatusInternalServerError
	}
	return kinds[k].status
}

// Error is a classified failure. Key names catalog copy that is safe to
// show a shopper; Message and Err stay in the logs.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

func (e Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e Error) Unwrap() error { return e.Err }

// E builds an Error without visitor copy.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds an Error whose visitor copy is the catalog entry key.
func EK(kind Kind, key, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap classifies cause. A nil cause stays nil.
func Wrap(kind Kind, key string, cause error) error {
	if cause == nil {
		return nil
	}
	return Error{Kind: kind, Key: strings.TrimSpace(key), Err: cause}
}

func classified(err error) (Error, bool) {
	var e Error
	if err == nil || !stderrors.As(err, &e) {
		return Error{}, false
	}
	return e, true
}

// KindOf returns the kind of the first Error in err's chain.
func KindOf(err error) Kind {
	e, _ := classified(err)
	return e.Kind
}

// LocalizationKey returns the catalog key attached to err, if any.
func LocalizationKey(err error) string {
	e, _ := classified(err)
	return e.Key
}

// HTTPStatus maps err to a response code. Nil is 200 and untyped errors are
// 500s.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return KindOf(err).Status()
}
