package i18n

var koMessages = map[string]string{
	KeyAppTitle: "Gemini 번역기",
	KeyLogout:   "로그아웃",

	KeyTranslateHeading:       "번역",
	KeyTranslateText:          "원문",
	KeyTranslateTextHint:      "번역할 문장을 입력하세요.",
	KeyTranslateSource:        "출발어",
	KeyTranslateTarget:        "도착어",
	KeyTranslateSwap:          "언어 바꾸기",
	KeyTranslateModel:         "모델",
	KeyTranslateLevel:         "사고 수준",
	KeyTranslateLevelHint:     "Gemini Flash 계열 모델은 사고 수준을 자동으로 조절합니다.",
	KeyTranslateAdvanced:      "고급 설정",
	KeyTranslateAPIKey:        "API 키",
	KeyTranslateAPIKeyHint:    "비워 두면 서버에 설정된 키를 사용합니다.",
	KeyTranslatePrompt:        "프롬프트 템플릿",
	KeyTranslatePromptReset:   "기본값으로 되돌리기",
	KeyTranslateSubmit:        "번역하기",
	KeyTranslateResultHeading: "번역 결과 (%s)",

	KeyLevelMinimal: "최소",
	KeyLevelLow:     "낮음",
	KeyLevelHigh:    "높음",

	KeyLoginTitle:    "로그인",
	KeyLoginHeading:  "비밀번호를 입력하면 번역기를 사용할 수 있습니다.",
	KeyLoginPassword: "비밀번호",
	KeyLoginSubmit:   "로그인",

	KeyErrorPageNotFound:   "페이지를 찾을 수 없습니다.",
	KeyErrorPageServer:     "요청을 처리하지 못했습니다.",
	KeyErrorPageBackToHome: "번역기로 돌아가기",

	"error.missing_api_key":            "GEMINI_API_KEY가 설정되지 않았습니다.",
	"error.empty_input":                "번역할 문장을 입력해주세요.",
	"error.same_language":              "출발어와 도착어가 동일합니다.",
	"error.unsupported_language":       "지원하지 않는 언어입니다.",
	"error.unsupported_thinking_level": "선택한 모델은 해당 사고 수준을 지원하지 않습니다.",
	"error.translation_failed":         "번역 요청 중 오류가 발생했습니다.",
	"error.empty_result":               "번역 결과가 비어 있습니다.",
	"error.password_empty":             "비밀번호를 입력해주세요.",
	"error.password_invalid":           "비밀번호가 올바르지 않습니다.",
}
