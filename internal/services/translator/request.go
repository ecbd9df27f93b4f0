package translator

import "strings"

// Request is one translation submission after form normalization.
type Request struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
	Model          string
	Level          Level
	PromptTemplate string
}

// Validate rejects requests that must never reach the remote model.
// Checks run in order: blank text, identical languages, unknown language,
// unsupported model/level pair. Unknown models are not an error here; the
// client falls back to its default.
func Validate(req Request) error {
	if strings.TrimSpace(req.Text) == "" {
		return ErrEmptyInput
	}
	if req.SourceLanguage == req.TargetLanguage {
		return ErrSameLanguage
	}
	if !KnownLanguage(req.SourceLanguage) || !KnownLanguage(req.TargetLanguage) {
		return ErrUnsupportedLanguage
	}
	if model, ok := LookupModel(req.Model); ok && !model.SupportsLevel(req.Level) {
		return ErrUnsupportedLevel
	}
	return nil
}
