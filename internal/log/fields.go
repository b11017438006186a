// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID  = "request_id"
	FieldEmployeeID = "employee_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Storage fields
	FieldBackend = "backend"
	FieldPath    = "path"
)
