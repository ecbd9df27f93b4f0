package login

import (
	"net/http"

	apperrors "github.com/louisbranch/translate.space/internal/platform/errors"
	"github.com/louisbranch/translate.space/internal/platform/metrics"
	webi18n "github.com/louisbranch/translate.space/internal/services/web/i18n"
	weberrors "github.com/louisbranch/translate.space/internal/services/web/platform/errors"
	"github.com/louisbranch/translate.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translate.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/translate.space/internal/services/web/platform/weberror"
	"github.com/louisbranch/translate.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/translate.space/internal/services/web/templates"
	"go.uber.org/zap"
)

const fieldPassword = "password"

type handlers struct {
	gate    Gate
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func newHandlers(gate Gate, m *metrics.Metrics, logger *zap.Logger) handlers {
	return handlers{gate: gate, metrics: m, logger: logger}
}

func (h handlers) enabled() bool {
	return h.gate != nil && h.gate.Enabled()
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	if !h.enabled() {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	next := routepath.SafeNext(r.URL.Query().Get(routepath.NextQueryKey))
	if h.gate.Authenticated(r) {
		httpx.WriteRedirect(w, r, next)
		return
	}
	h.writeForm(w, r, http.StatusOK, next, nil)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.enabled() {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	next := routepath.SafeNext(r.PostFormValue(routepath.NextQueryKey))
	if err := h.gate.CheckPassword(r.PostFormValue(fieldPassword)); err != nil {
		h.metrics.ObserveLogin(loginResult(err))
		h.writeForm(w, r, weberrors.HTTPStatus(err), next, err)
		return
	}
	if err := h.gate.SignIn(w, r); err != nil {
		h.logger.Error("issue session token", zap.Error(err))
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
		return
	}
	h.metrics.ObserveLogin(metrics.LoginSuccess)
	httpx.WriteRedirect(w, r, next)
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, status int, next string, formErr error) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	view := webtemplates.LoginView{Error: weberror.PublicMessage(loc, formErr)}
	if next != routepath.Root {
		view.Next = next
	}
	err := pagerender.WritePage(w, r, loc, lang, pagerender.Page{
		Title:      webtemplates.T(loc, webi18n.KeyLoginTitle),
		StatusCode: status,
		Fragment:   webtemplates.LoginPage(view, loc),
	})
	if err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	}
}

func loginResult(err error) string {
	if apperrors.CodeOf(err) == apperrors.CodePasswordEmpty {
		return metrics.LoginEmpty
	}
	return metrics.LoginRejected
}
