package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Markup writes HTML to an io.Writer and keeps the first write error, so a
// component body reads as a straight sequence of writes.
type Markup struct {
	w   io.Writer
	err error
}

// NewMarkup wraps w.
func NewMarkup(w io.Writer) *Markup {
	return &Markup{w: w}
}

// Raw writes trusted HTML.
func (m *Markup) Raw(parts ...string) *Markup {
	for _, part := range parts {
		if m.err != nil {
			return m
		}
		_, m.err = io.WriteString(m.w, part)
	}
	return m
}

// Text writes escaped text.
func (m *Markup) Text(value string) *Markup {
	return m.Raw(templ.EscapeString(value))
}

// Attr writes ` name="value"` with value escaped.
func (m *Markup) Attr(name, value string) *Markup {
	return m.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// AttrIf writes the attribute only when cond holds.
func (m *Markup) AttrIf(cond bool, name, value string) *Markup {
	if !cond {
		return m
	}
	return m.Attr(name, value)
}

// URLAttr writes a sanitized URL attribute.
func (m *Markup) URLAttr(name, rawURL string) *Markup {
	return m.Attr(name, string(templ.URL(rawURL)))
}

// Render writes a child component.
func (m *Markup) Render(ctx context.Context, component templ.Component) *Markup {
	if m.err != nil || component == nil {
		return m
	}
	m.err = component.Render(ctx, m.w)
	return m
}

// Err returns the first error encountered.
func (m *Markup) Err() error {
	return m.err
}
