package templates

import (
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

// text writes value HTML-escaped.
func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

// attr writes name="value" with value escaped.
func (h *htmlWriter) attr(name string, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (h *htmlWriter) boolAttr(name string, on bool) {
	if on {
		h.raw(" ", name)
	}
}

// Option is one entry of a select control.
type Option struct {
	Value string
	Label string
}

func (h *htmlWriter) selectControl(id string, name string, options []Option, selected string) {
	h.raw("<select")
	h.attr("id", id)
	h.attr("name", name)
	h.raw(">")
	for _, option := range options {
		h.raw("<option")
		h.attr("value", option.Value)
		h.boolAttr("selected", option.Value == selected)
		h.raw(">")
		h.text(option.Label)
		h.raw("</option>")
	}
	h.raw("</select>")
}

func (h *htmlWriter) errorMessage(message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	h.raw(`<p class="error" role="alert">`)
	h.text(message)
	h.raw("</p>")
}
