// Package modelerr defines the error-kind taxonomy shared by every stage of
// the reference-closure and code-generation pipeline.
package modelerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Every error surfaced by the pipeline wraps one of these so
// callers can classify failures with errors.Is regardless of the message.
var (
	ErrArgument             = errors.New("argument error")
	ErrIO                   = errors.New("io error")
	ErrParse                = errors.New("parse error")
	ErrInvalidURI           = errors.New("invalid uri")
	ErrMissingSchema        = errors.New("missing schema")
	ErrUnsupportedConstruct = errors.New("unsupported construct")
	ErrDuplicateAnonymous   = errors.New("duplicate anonymous schema")
)

// UnsupportedConstructError carries the source location of a construct the
// generator or collector refuses to lower, naming the offending schema.
type UnsupportedConstructError struct {
	Location string // e.g. "redfish/Foo.v1_0_0.yaml#/components/schemas/Foo"
	Detail   string // e.g. "allOf composition is not supported"
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("%s: %s (at %s)", ErrUnsupportedConstruct, e.Detail, e.Location)
}

func (e *UnsupportedConstructError) Unwrap() error {
	return ErrUnsupportedConstruct
}

// NewUnsupportedConstruct builds an UnsupportedConstructError.
func NewUnsupportedConstruct(location, detail string) error {
	return &UnsupportedConstructError{Location: location, Detail: detail}
}

// MissingSchemaError names the ReferenceKey that has no corresponding
// SchemaItem at emission time.
type MissingSchemaError struct {
	Key string
}

func (e *MissingSchemaError) Error() string {
	return fmt.Sprintf("%s: no collected schema for %s", ErrMissingSchema, e.Key)
}

func (e *MissingSchemaError) Unwrap() error {
	return ErrMissingSchema
}

// NewMissingSchema builds a MissingSchemaError.
func NewMissingSchema(key string) error {
	return &MissingSchemaError{Key: key}
}
