// SPDX-License-Identifier: MIT

// Package validation implements the request validation stage of the API
// pipeline. Handlers hand decoded request payloads here before any business
// logic runs; violations are reported per field so clients can map them back
// onto their input.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors aggregates all violations found in one request.
type Errors []FieldError

// Error implements the error interface.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// OrNil returns the error collection, or nil when no violations were found.
// Returning a typed nil-wrapped error from validators is a classic footgun;
// this keeps call sites on plain `if err != nil`.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

const (
	maxNameLength     = 100
	maxPositionLength = 80
)

// EmployeeInput is the validated subset of an employee create request.
type EmployeeInput struct {
	Name     string
	Email    string
	Position string
	Salary   float64
	HiredAt  time.Time
}

// Employee validates a create request against the domain rules.
func Employee(in EmployeeInput, now time.Time) error {
	var errs Errors

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs = append(errs, FieldError{Field: "name", Message: "must not be empty"})
	case utf8.RuneCountInString(name) > maxNameLength:
		errs = append(errs, FieldError{Field: "name", Message: fmt.Sprintf("must be at most %d characters", maxNameLength)})
	}

	if in.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "must not be empty"})
	} else if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid address"})
	}

	position := strings.TrimSpace(in.Position)
	switch {
	case position == "":
		errs = append(errs, FieldError{Field: "position", Message: "must not be empty"})
	case utf8.RuneCountInString(position) > maxPositionLength:
		errs = append(errs, FieldError{Field: "position", Message: fmt.Sprintf("must be at most %d characters", maxPositionLength)})
	}

	if in.Salary <= 0 {
		errs = append(errs, FieldError{Field: "salary", Message: "must be greater than zero"})
	}

	if in.HiredAt.IsZero() {
		errs = append(errs, FieldError{Field: "hired_at", Message: "must be set"})
	} else if in.HiredAt.After(now) {
		errs = append(errs, FieldError{Field: "hired_at", Message: "must not be in the future"})
	}

	return errs.OrNil()
}
