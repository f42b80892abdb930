// Package contract defines the types and sentinel errors shared across the
// agent graph, its nodes, and the tool gateway.
package contract

import "errors"

var (
	// ErrModelInvoke reports a failed call to the generation backend.
	ErrModelInvoke = errors.New("generation call failed")
	// ErrSchemaViolation reports model output that does not fit the
	// expected shape, such as an unknown intent label.
	ErrSchemaViolation = errors.New("model output violates expected schema")
	// ErrValidation reports malformed input to a graph node.
	ErrValidation = errors.New("validation failed")
)
