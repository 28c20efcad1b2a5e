// Copyright (c) 2025, Xiaofeng Zu.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeInvalidConfig indicates a malformed entity declaration or document.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidFlagSpec indicates a flag table that is neither a mapping
	// nor a single-mapping list.
	ErrCodeInvalidFlagSpec ErrorCode = "INVALID_FLAG_SPEC"
	// ErrCodeInvalidTarget indicates a target with neither a command nor dependencies.
	ErrCodeInvalidTarget ErrorCode = "INVALID_TARGET_SPEC"
	// ErrCodeInvalidLanguageKind indicates a source kind outside C, CPP and ASM.
	ErrCodeInvalidLanguageKind ErrorCode = "INVALID_LANGUAGE_KIND"
	// ErrCodeDuplicateEntity indicates the same name declared by two entity kinds.
	ErrCodeDuplicateEntity ErrorCode = "DUPLICATE_ENTITY"
	// ErrCodeUndefinedVariable indicates a $(NAME) reference to an unknown variable.
	ErrCodeUndefinedVariable ErrorCode = "UNDEFINED_VARIABLE"
	// ErrCodeUnknownLibrary indicates an application depending on an undeclared library.
	ErrCodeUnknownLibrary ErrorCode = "UNKNOWN_LIBRARY_DEPENDENCY"
	// ErrCodeNotFound indicates a requested file was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeFilesystem indicates a read, write or walk failure.
	ErrCodeFilesystem ErrorCode = "FILESYSTEM"
	// ErrCodeUnsupportedBackend indicates a generator name with no renderer.
	ErrCodeUnsupportedBackend ErrorCode = "UNSUPPORTED_BACKEND"
	// ErrCodeWriteFailed indicates the output sink rejected a write.
	ErrCodeWriteFailed ErrorCode = "WRITE_FAILED"
	// ErrCodeExternalTool indicates a Kconfig tool invocation failed.
	ErrCodeExternalTool ErrorCode = "EXTERNAL_TOOL"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the name of the offending entity, the underlying cause, and optional context
// for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Entity  string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	msg := e.Message
	if e.Entity != "" {
		msg = fmt.Sprintf("%s: %s", e.Entity, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a StructuredError with the same code.
func (e *StructuredError) Is(target error) bool {
	var t *StructuredError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// NewEntity creates a new StructuredError attributed to the named entity.
func NewEntity(code ErrorCode, entity, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Entity:  entity,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// WrapEntity wraps cause and attributes it to the named entity. The code of
// the innermost StructuredError is kept so callers can still match on it.
func WrapEntity(entity, message string, cause error) *StructuredError {
	code := ErrCodeInternal
	if c, ok := CodeOf(cause); ok {
		code = c
	}
	return &StructuredError{
		Code:    code,
		Message: message,
		Entity:  entity,
		Cause:   cause,
	}
}

// HasCode reports whether any StructuredError in the chain of err carries code.
func HasCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, &StructuredError{Code: code})
}

// CodeOf returns the code of the first StructuredError in the chain of err.
func CodeOf(err error) (ErrorCode, bool) {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return "", false
}
