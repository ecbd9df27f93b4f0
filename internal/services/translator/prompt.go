package translator

import "strings"

// DefaultPromptTemplate is the instruction sent when a request carries no
// template of its own.
const DefaultPromptTemplate = `# Role
You are a professional translator.

# Task
Translate the following text from {{source}} into {{target}}.

# Constraints
1. **Accuracy**: Preserve the original meaning and nuance accurately.
2. **No Fluff**: Output ONLY the translated text. Do not include notes, explanations, or conversational fillers (e.g., "Here is the translation").

# Input Data
- Source Language: {{source}}
- Target Language: {{target}}
- Text to Translate:
"""
{{text}}
"""
`

// Template placeholders.
const (
	PlaceholderSource = "{{source}}"
	PlaceholderTarget = "{{target}}"
	PlaceholderText   = "{{text}}"
)

// BuildPrompt fills template with the languages and text. A blank template
// selects DefaultPromptTemplate. Substitution is literal and single pass, so
// placeholder tokens inside the substituted values are left as typed.
func BuildPrompt(template string, source string, target string, text string) string {
	if strings.TrimSpace(template) == "" {
		template = DefaultPromptTemplate
	}
	replacer := strings.NewReplacer(
		PlaceholderSource, source,
		PlaceholderTarget, target,
		PlaceholderText, text,
	)
	return strings.TrimSpace(replacer.Replace(template))
}
