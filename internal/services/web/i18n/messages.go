package i18n

import "golang.org/x/text/message"

// Message keys shared by templates and handlers.
const (
	KeyAppTitle = "app.title"
	KeyLogout   = "nav.logout"

	KeyTranslateHeading       = "translate.heading"
	KeyTranslateText          = "translate.text"
	KeyTranslateTextHint      = "translate.text_hint"
	KeyTranslateSource        = "translate.source_language"
	KeyTranslateTarget        = "translate.target_language"
	KeyTranslateSwap          = "translate.swap"
	KeyTranslateModel         = "translate.model"
	KeyTranslateLevel         = "translate.level"
	KeyTranslateLevelHint     = "translate.level_hint"
	KeyTranslateAdvanced      = "translate.advanced"
	KeyTranslateAPIKey        = "translate.api_key"
	KeyTranslateAPIKeyHint    = "translate.api_key_hint"
	KeyTranslatePrompt        = "translate.prompt_template"
	KeyTranslatePromptReset   = "translate.prompt_reset"
	KeyTranslateSubmit        = "translate.submit"
	KeyTranslateResultHeading = "translate.result_heading"

	KeyLevelMinimal = "level.minimal"
	KeyLevelLow     = "level.low"
	KeyLevelHigh    = "level.high"

	KeyLoginTitle    = "login.title"
	KeyLoginHeading  = "login.heading"
	KeyLoginPassword = "login.password"
	KeyLoginSubmit   = "login.submit"

	KeyErrorPageNotFound   = "web.error.not_found"
	KeyErrorPageServer     = "web.error.server_error"
	KeyErrorPageBackToHome = "web.error.back_to_home"
)

func init() {
	for key, msg := range koMessages {
		_ = message.SetString(Korean, key, msg)
	}
	for key, msg := range enMessages {
		_ = message.SetString(English, key, msg)
	}
}
