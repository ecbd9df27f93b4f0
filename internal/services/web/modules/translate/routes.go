package translate

import (
	"net/http"

	"github.com/louisbranch/translate.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.RootExact, h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.RootExact, h.handleTranslate)
	mux.HandleFunc(http.MethodGet+" "+routepath.PromptTemplate, h.handlePromptTemplate)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
