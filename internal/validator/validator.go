// Package validator declares the request shapes accepted by the API and
// validates incoming payloads against them. Each resource gets a create
// shape, an update shape (same fields made optional, at least one
// required) and an id-parameter shape. Validation runs in middleware
// before any handler logic; handlers only ever see parsed values.
package validator

import (
    v10 "github.com/go-playground/validator/v10"
)

var validate = v10.New(v10.WithRequiredStructEnabled())

// Struct validates a request shape and returns the underlying
// validator error on failure.
func Struct(s any) error {
    return validate.Struct(s)
}

// Defaulter is implemented by shapes that fill defaults for omitted
// fields after binding and before validation.
type Defaulter interface {
    ApplyDefaults()
}
