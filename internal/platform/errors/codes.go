// Package errors provides structured error handling for translator and
// access-gate failures.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Configuration errors
	CodeMissingAPIKey Code = "MISSING_API_KEY"

	// Translation input errors
	CodeEmptyInput          Code = "EMPTY_INPUT"
	CodeSameLanguage        Code = "SAME_LANGUAGE"
	CodeUnsupportedLanguage Code = "UNSUPPORTED_LANGUAGE"
	CodeUnsupportedLevel    Code = "UNSUPPORTED_THINKING_LEVEL"

	// Remote model errors
	CodeTranslationFailed Code = "TRANSLATION_FAILED"
	CodeEmptyResult       Code = "EMPTY_RESULT"

	// Access gate errors
	CodePasswordEmpty   Code = "PASSWORD_EMPTY"
	CodePasswordInvalid Code = "PASSWORD_INVALID"
)

// Category groups codes by the kind of failure they describe.
type Category int

const (
	// CategoryInternal covers unclassified failures.
	CategoryInternal Category = iota
	// CategoryValidation covers rejected caller input.
	CategoryValidation
	// CategoryConfiguration covers missing deployment configuration.
	CategoryConfiguration
	// CategoryUpstream covers failures reported by or about the remote model.
	CategoryUpstream
	// CategoryUnauthorized covers rejected credentials.
	CategoryUnauthorized
)

// Category maps domain codes to failure categories.
func (c Code) Category() Category {
	switch c {
	case CodeEmptyInput,
		CodeSameLanguage,
		CodeUnsupportedLanguage,
		CodeUnsupportedLevel,
		CodePasswordEmpty:
		return CategoryValidation
	case CodeMissingAPIKey:
		return CategoryConfiguration
	case CodeTranslationFailed,
		CodeEmptyResult:
		return CategoryUpstream
	case CodePasswordInvalid:
		return CategoryUnauthorized
	default:
		return CategoryInternal
	}
}
