package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shashiranjanraj/mrvrecords/pkg/orm"
	"github.com/shashiranjanraj/mrvrecords/pkg/validate"
)

// Error kinds. Services wrap them so callers can branch with errors.Is while
// Error() stays a message fit for the client.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrReference  = errors.New("invalid reference")
	ErrConflict   = errors.New("conflict")
)

// Error is a client-facing failure of a given kind. Validation failures also
// carry the message for each offending json field.
type Error struct {
	kind   error
	msg    string
	fields map[string]string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

// Fields returns json field → message, or nil.
func (e *Error) Fields() map[string]string { return e.fields }

func newError(kind error, format string, args ...interface{}) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// notFoundOr turns gorm's record-not-found into ErrNotFound for label and
// passes any other error through.
func notFoundOr(err error, label string) error {
	if errors.Is(err, orm.ErrRecordNotFound) {
		return newError(ErrNotFound, "%s not found", label)
	}
	return err
}

func fieldError(field, msg string) error {
	return &Error{kind: ErrValidation, msg: msg, fields: map[string]string{field: msg}}
}

// checkInput runs struct-tag validation. Field messages are joined in field
// order so the text is stable.
func checkInput(in interface{}) error {
	errs := validate.Struct(in)
	if !validate.HasErrors(errs) {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, errs[f])
	}
	return &Error{kind: ErrValidation, msg: strings.Join(msgs, " "), fields: errs}
}
