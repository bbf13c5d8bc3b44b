package faults

import (
	"errors"
	"fmt"
)

// ValidationError reports a structurally invalid field or state.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a missing entity within a named resource.
type NotFoundError struct {
	Resource string
	Message  string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Resource, e.Message)
}

// UnsupportedMethodError reports a payment method outside the configured set.
type UnsupportedMethodError struct {
	Method  string
	Message string
}

func (e UnsupportedMethodError) Error() string {
	return fmt.Sprintf("%s: %s", e.Method, e.Message)
}

// GatewayDeclinedError reports a charge rejected by the payment gateway.
type GatewayDeclinedError struct {
	Message string
}

func (e GatewayDeclinedError) Error() string {
	return e.Message
}

// Message extracts the user-facing message carried by a fault. Operations
// that surface failures as plain strings go through here so that field and
// method metadata stays out of what the caller sees.
func Message(err error) string {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var nf NotFoundError
	if errors.As(err, &nf) {
		return nf.Message
	}
	var um UnsupportedMethodError
	if errors.As(err, &um) {
		return um.Message
	}
	var gd GatewayDeclinedError
	if errors.As(err, &gd) {
		return gd.Message
	}
	return err.Error()
}
