package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/fulmenhq/gofulmen/errors"
	"github.com/fulmenhq/gofulmen/foundry"
)

// Error codes carried by envelopes produced in this package.
const (
	CodeMissingTask      = "MISSING_TASK"
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeSchemaUnreadable = "SCHEMA_UNREADABLE"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeOutputFailed     = "OUTPUT_FAILED"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternal         = "INTERNAL_ERROR"
)

// ExitInputError is the process status for any fatal input problem.
const ExitInputError = 2

// ExitFailure is the process status for failures that are not input problems.
var ExitFailure = int(foundry.ExitFailure)

// User Errors

func NewMissingTaskError() *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeMissingTask, "--task is required or provide task via STDIN")
}

func NewInvalidInputError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeInvalidInput, message)
}

// Wrap functions for file-backed failures

func WrapConfigParse(path string, err error) *errors.ErrorEnvelope {
	envelope := errors.NewErrorEnvelope(CodeConfigInvalid, fmt.Sprintf("failed to parse config at %s: %v", path, err))
	return withPath(envelope, path, err)
}

func WrapSchemaRead(path string, err error) *errors.ErrorEnvelope {
	envelope := errors.NewErrorEnvelope(CodeSchemaUnreadable, fmt.Sprintf("failed to read schema at %s: %v", path, err))
	return withPath(envelope, path, err)
}

func WrapOutput(path string, err error) *errors.ErrorEnvelope {
	envelope := errors.NewErrorEnvelope(CodeOutputFailed, fmt.Sprintf("failed to write output to %s: %v", path, err))
	envelope = withPath(envelope, path, err)
	if updated, sevErr := envelope.WithSeverity(errors.SeverityHigh); sevErr == nil {
		envelope = updated
	}
	return envelope
}

func WrapValidation(source string, err error) *errors.ErrorEnvelope {
	envelope := errors.NewErrorEnvelope(CodeValidationFailed, fmt.Sprintf("%s does not match schema: %v", source, err))
	envelope = withPath(envelope, source, err)
	if updated, sevErr := envelope.WithSeverity(errors.SeverityMedium); sevErr == nil {
		envelope = updated
	}
	return envelope
}

func withPath(envelope *errors.ErrorEnvelope, path string, err error) *errors.ErrorEnvelope {
	if envelope == nil {
		return nil
	}
	ctx := map[string]interface{}{"path": path}
	if err != nil {
		ctx["wrapped_error"] = err.Error()
	}
	updated, updateErr := envelope.WithContext(ctx)
	if updateErr != nil {
		return envelope
	}
	return updated
}

// EnsureEnvelope normalizes any error into a gofulmen ErrorEnvelope.
func EnsureEnvelope(err error) *errors.ErrorEnvelope {
	if err == nil {
		env := errors.NewErrorEnvelope(CodeInternal, "unexpected nil error")
		env, _ = env.WithSeverity(errors.SeverityCritical)
		return env
	}

	var envelope *errors.ErrorEnvelope
	if stderrors.As(err, &envelope) && envelope != nil {
		return envelope
	}

	env := errors.NewErrorEnvelope(CodeInternal, err.Error())
	env, _ = env.WithContext(map[string]interface{}{
		"wrapped_error": err.Error(),
	})
	env, _ = env.WithSeverity(errors.SeverityHigh)
	return env
}

// Code returns the envelope code of err, or "" when err is nil.
func Code(err error) string {
	if err == nil {
		return ""
	}
	return EnsureEnvelope(err).Code
}

// ExitCode resolves the process status for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch Code(err) {
	case CodeMissingTask, CodeConfigInvalid, CodeSchemaUnreadable, CodeInvalidInput:
		return ExitInputError
	default:
		return ExitFailure
	}
}

// Message returns the one-line human message for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return EnsureEnvelope(err).Message
}
