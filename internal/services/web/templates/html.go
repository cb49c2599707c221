package templates

import (
	"io"

	"github.com/a-h/templ"
)

// html is a small sticky-error writer used by the hand-assembled components.
type html struct {
	w   io.Writer
	err error
}

func newHTML(w io.Writer) *html {
	return &html{w: w}
}

func (h *html) raw(s string) *html {
	if h.err != nil {
		return h
	}
	_, h.err = io.WriteString(h.w, s)
	return h
}

func (h *html) text(s string) *html {
	return h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *html) attr(name string, value string) *html {
	return h.raw(" " + name + `="`).text(value).raw(`"`)
}

func (h *html) boolAttr(name string, on bool) *html {
	if !on {
		return h
	}
	return h.raw(" " + name)
}

func (h *html) open(tag string, attrs ...string) *html {
	h.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.attr(attrs[i], attrs[i+1])
	}
	return h.raw(">")
}

func (h *html) close(tag string) *html {
	return h.raw("</" + tag + ">")
}

// element writes <tag attrs...>text</tag>.
func (h *html) element(tag string, text string, attrs ...string) *html {
	return h.open(tag, attrs...).text(text).close(tag)
}
