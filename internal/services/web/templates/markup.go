package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup writes HTML and remembers the first write error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// text writes s HTML-escaped.
func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// open writes <tag attrs...> where attrs alternate name, value.
func (m *markup) open(tag string, attrs ...string) {
	m.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		m.attr(attrs[i], attrs[i+1])
	}
	m.raw(">")
}

func (m *markup) close(tag string) {
	m.raw("</" + tag + ">")
}

// element writes <tag attrs>escaped text</tag>.
func (m *markup) element(tag, content string, attrs ...string) {
	m.open(tag, attrs...)
	m.text(content)
	m.close(tag)
}

func (m *markup) component(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func component(fn func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		fn(ctx, m)
		return m.err
	})
}

// hiddenField writes a hidden input.
func (m *markup) hiddenField(name, value string) {
	m.open("input", "type", "hidden", "name", name, "value", value)
}

// postButton writes a single-button form posting to action.
func (m *markup) postButton(action, label, class string, hidden ...string) {
	m.open("form", "method", "post", "action", action, "class", "inline-form")
	for i := 0; i+1 < len(hidden); i += 2 {
		m.hiddenField(hidden[i], hidden[i+1])
	}
	m.element("button", label, "type", "submit", "class", class)
	m.close("form")
}
