package i18n

var enMessages = map[string]string{
	KeyAppTitle: "Gemini Translator",
	KeyLogout:   "Sign out",

	KeyTranslateHeading:       "Translate",
	KeyTranslateText:          "Source text",
	KeyTranslateTextHint:      "Enter the text to translate.",
	KeyTranslateSource:        "From",
	KeyTranslateTarget:        "To",
	KeyTranslateSwap:          "Swap languages",
	KeyTranslateModel:         "Model",
	KeyTranslateLevel:         "Thinking level",
	KeyTranslateLevelHint:     "Gemini Flash models pick their own thinking budget.",
	KeyTranslateAdvanced:      "Advanced",
	KeyTranslateAPIKey:        "API key",
	KeyTranslateAPIKeyHint:    "Leave blank to use the server key.",
	KeyTranslatePrompt:        "Prompt template",
	KeyTranslatePromptReset:   "Reset to default",
	KeyTranslateSubmit:        "Translate",
	KeyTranslateResultHeading: "Translation (%s)",

	KeyLevelMinimal: "Minimal",
	KeyLevelLow:     "Low",
	KeyLevelHigh:    "High",

	KeyLoginTitle:    "Sign in",
	KeyLoginHeading:  "Enter the password to use the translator.",
	KeyLoginPassword: "Password",
	KeyLoginSubmit:   "Sign in",

	KeyErrorPageNotFound:   "Page not found.",
	KeyErrorPageServer:     "The request could not be processed.",
	KeyErrorPageBackToHome: "Back to the translator",

	"error.missing_api_key":            "GEMINI_API_KEY is not configured.",
	"error.empty_input":                "Enter some text to translate.",
	"error.same_language":              "Source and target languages are the same.",
	"error.unsupported_language":       "That language is not supported.",
	"error.unsupported_thinking_level": "The selected model does not support that thinking level.",
	"error.translation_failed":         "The translation request failed.",
	"error.empty_result":               "The translation came back empty.",
	"error.password_empty":             "Enter the password.",
	"error.password_invalid":           "The password is incorrect.",
}
