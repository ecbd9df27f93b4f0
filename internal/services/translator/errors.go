package translator

import apperrors "github.com/louisbranch/translate.space/internal/platform/errors"

var (
	// ErrMissingAPIKey indicates no API key was configured or supplied.
	ErrMissingAPIKey = apperrors.New(apperrors.CodeMissingAPIKey, "GEMINI_API_KEY가 설정되지 않았습니다.")
	// ErrEmptyInput indicates the text was blank after trimming.
	ErrEmptyInput = apperrors.New(apperrors.CodeEmptyInput, "번역할 문장을 입력해주세요.")
	// ErrSameLanguage indicates source and target languages match.
	ErrSameLanguage = apperrors.New(apperrors.CodeSameLanguage, "출발어와 도착어가 동일합니다.")
	// ErrUnsupportedLanguage indicates a language code outside the table.
	ErrUnsupportedLanguage = apperrors.New(apperrors.CodeUnsupportedLanguage, "지원하지 않는 언어입니다.")
	// ErrUnsupportedLevel indicates the model rejects the thinking level.
	ErrUnsupportedLevel = apperrors.New(apperrors.CodeUnsupportedLevel, "선택한 모델은 해당 사고 수준을 지원하지 않습니다.")
	// ErrTranslationFailed is the uniform transport failure.
	ErrTranslationFailed = apperrors.New(apperrors.CodeTranslationFailed, "번역 요청 중 오류가 발생했습니다.")
	// ErrEmptyResult indicates the model produced only whitespace.
	ErrEmptyResult = apperrors.New(apperrors.CodeEmptyResult, "번역 결과가 비어 있습니다.")
)

func translationFailed(cause error) error {
	return apperrors.Wrap(apperrors.CodeTranslationFailed, ErrTranslationFailed.Message, cause)
}
