package errors

import (
	"fmt"
)

// Error types for different categories of failures
const (
	// Grammar configuration errors (raised at compile time, never while lexing)
	ErrInvalidPattern           = "INVALID_PATTERN"
	ErrUnknownState             = "UNKNOWN_STATE"
	ErrGrammarCycle             = "GRAMMAR_CYCLE"
	ErrMalformedCompiledGrammar = "MALFORMED_COMPILED_GRAMMAR"

	// Input/File errors
	ErrInputRead       = "INPUT_READ_ERROR"
	ErrUnknownEncoding = "UNKNOWN_ENCODING"

	// Registry errors
	ErrLanguageNotFound = "LANGUAGE_NOT_FOUND"
)

// GlintError represents a structured error with type and context
type GlintError struct {
	Type    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *GlintError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows error unwrapping
func (e *GlintError) Unwrap() error {
	return e.Cause
}

// New creates a new GlintError
func New(errorType, message string) *GlintError {
	return &GlintError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap creates a new GlintError wrapping an existing error
func Wrap(errorType, message string, cause error) *GlintError {
	return &GlintError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context information to the error
func (e *GlintError) WithContext(key string, value interface{}) *GlintError {
	e.Context[key] = value
	return e
}

// GetType returns the error type
func (e *GlintError) GetType() string {
	return e.Type
}

// GetContext returns context value by key
func (e *GlintError) GetContext(key string) (interface{}, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// Helper functions for common error scenarios

// NewInvalidPatternError reports a regex that failed to compile, carrying the
// offending pattern and the state that declared it.
func NewInvalidPatternError(state, pattern string, cause error) *GlintError {
	return Wrap(ErrInvalidPattern, fmt.Sprintf("invalid pattern %q in state %q", pattern, state), cause).
		WithContext("state", state).
		WithContext("pattern", pattern)
}

// NewUnknownStateError reports a Push/Goto/Include target that does not exist
// in the grammar.
func NewUnknownStateError(missing, fromState string, ruleIndex int) *GlintError {
	return New(ErrUnknownState, fmt.Sprintf("state %q referenced from %q (rule %d) does not exist", missing, fromState, ruleIndex)).
		WithContext("state", missing).
		WithContext("from_state", fromState).
		WithContext("rule_index", ruleIndex)
}

// NewGrammarCycleError reports an include cycle, naming the states involved.
func NewGrammarCycleError(cycle []string) *GlintError {
	return New(ErrGrammarCycle, fmt.Sprintf("include cycle: %v", cycle)).
		WithContext("cycle", cycle)
}

// NewMalformedCompiledGrammarError reports a compiled grammar whose stack can
// reach a state absent from its own state map.
func NewMalformedCompiledGrammarError(state string) *GlintError {
	return New(ErrMalformedCompiledGrammar, fmt.Sprintf("compiled grammar has no state %q", state)).
		WithContext("state", state)
}

// NewInputError creates an input-related error
func NewInputError(message string, cause error) *GlintError {
	return Wrap(ErrInputRead, message, cause)
}

// NewUnknownEncodingError reports an input encoding name the decoder does not
// recognise.
func NewUnknownEncodingError(name string, cause error) *GlintError {
	return Wrap(ErrUnknownEncoding, fmt.Sprintf("unknown input encoding %q", name), cause).
		WithContext("encoding", name)
}

// NewLanguageNotFoundError reports a registry lookup miss.
func NewLanguageNotFoundError(name string, available []string) *GlintError {
	return New(ErrLanguageNotFound, fmt.Sprintf("no language registered under %q", name)).
		WithContext("language", name).
		WithContext("available", available)
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType string) bool {
	if glintErr, ok := err.(*GlintError); ok {
		return glintErr.Type == errorType
	}
	return false
}
