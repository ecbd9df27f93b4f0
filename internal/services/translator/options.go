package translator

import "strings"

// Language is one selectable source or target language.
type Language struct {
	Code  string
	Label string
}

// Default form languages.
const (
	DefaultSourceLanguage = "ko"
	DefaultTargetLanguage = "en"
)

var languages = []Language{
	{Code: "ko", Label: "한국어"},
	{Code: "en", Label: "English"},
	{Code: "ja", Label: "日本語"},
	{Code: "ch", Label: "中文"},
}

// Languages returns the selectable languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LanguageLabel returns the display label for code, or code itself when it
// is not a known language.
func LanguageLabel(code string) string {
	for _, lang := range languages {
		if lang.Code == code {
			return lang.Label
		}
	}
	return code
}

// KnownLanguage reports whether code is in the language table.
func KnownLanguage(code string) bool {
	for _, lang := range languages {
		if lang.Code == code {
			return true
		}
	}
	return false
}

// NormalizeLanguage trims code and returns fallback when it is blank. Unknown
// codes are kept so Validate can reject them.
func NormalizeLanguage(code string, fallback string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return fallback
	}
	return code
}

// Level is a requested thinking effort.
type Level string

const (
	LevelMinimal Level = "minimal"
	LevelLow     Level = "low"
	LevelHigh    Level = "high"
)

// DefaultLevel is preselected in the form.
const DefaultLevel = LevelHigh

var levels = []Level{LevelMinimal, LevelLow, LevelHigh}

// Levels returns the thinking levels in display order.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// ParseLevel reports whether raw names a thinking level.
func ParseLevel(raw string) (Level, bool) {
	candidate := Level(strings.ToLower(strings.TrimSpace(raw)))
	for _, level := range levels {
		if level == candidate {
			return level, true
		}
	}
	return "", false
}

// ThinkingMode selects how thinking is configured for a model.
type ThinkingMode int

const (
	// ThinkingBudget sends a dynamic token budget and ignores the level.
	ThinkingBudget ThinkingMode = iota
	// ThinkingLevel sends the requested level explicitly.
	ThinkingLevel
)

// Model is one entry of the static model policy table.
type Model struct {
	ID       string
	Label    string
	Thinking ThinkingMode
	// Levels lists accepted levels for ThinkingLevel models.
	Levels []Level
}

// DefaultModelID is used when no default model is configured.
const DefaultModelID = "gemini-flash-latest"

// dynamicBudget lets the model pick its own thinking budget.
const dynamicBudget int32 = -1

var models = []Model{
	{ID: "gemini-flash-latest", Label: "Gemini Flash", Thinking: ThinkingBudget},
	{ID: "gemini-flash-lite-latest", Label: "Gemini Flash-Lite", Thinking: ThinkingBudget},
	{ID: "gemini-3-flash-preview", Label: "Gemini 3 Flash (Preview)", Thinking: ThinkingLevel, Levels: []Level{LevelMinimal, LevelLow, LevelHigh}},
	{ID: "gemini-3-pro-preview", Label: "Gemini 3 Pro (Preview)", Thinking: ThinkingLevel, Levels: []Level{LevelLow, LevelHigh}},
}

// Models returns the model policy table in display order.
func Models() []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}

// LookupModel returns the policy for id.
func LookupModel(id string) (Model, bool) {
	id = strings.TrimSpace(id)
	for _, model := range models {
		if model.ID == id {
			return model, true
		}
	}
	return Model{}, false
}

// NormalizeModel returns id when it is a known model, else fallback.
func NormalizeModel(id string, fallback string) string {
	if model, ok := LookupModel(id); ok {
		return model.ID
	}
	return fallback
}

// SupportsLevel reports whether the model accepts level. Budget models
// accept every level because they ignore it.
func (m Model) SupportsLevel(level Level) bool {
	if m.Thinking == ThinkingBudget {
		return true
	}
	for _, allowed := range m.Levels {
		if allowed == level {
			return true
		}
	}
	return false
}

// DefaultLevel returns the level used when a request names none.
func (m Model) DefaultLevel() Level {
	if m.SupportsLevel(DefaultLevel) || len(m.Levels) == 0 {
		return DefaultLevel
	}
	return m.Levels[len(m.Levels)-1]
}
