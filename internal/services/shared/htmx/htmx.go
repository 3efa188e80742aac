// Package htmx renders console responses for full-page and htmx requests.
package htmx

import (
	"bytes"
	"context"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

const (
	// RequestHeader marks requests issued by htmx.
	RequestHeader = "HX-Request"
	// RedirectHeader asks htmx to perform a full client-side redirect.
	RedirectHeader = "HX-Redirect"
	// TriggerHeader fires a client-side event after the swap.
	TriggerHeader = "HX-Trigger"
	// RetargetHeader overrides the swap target.
	RetargetHeader = "HX-Retarget"
)

// captureWriter buffers a component render so the body can be trimmed before
// it reaches the client.
type captureWriter struct {
	header      http.Header
	statusCode  int
	body        bytes.Buffer
	wroteHeader bool
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{header: make(http.Header), statusCode: http.StatusOK}
}

func (c *captureWriter) Header() http.Header {
	return c.header
}

func (c *captureWriter) WriteHeader(status int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true
	c.statusCode = status
}

func (c *captureWriter) Write(body []byte) (int, error) {
	return c.body.Write(body)
}

// IsHTMXRequest reports whether the request was initiated by htmx.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage renders full for normal requests. For htmx requests it renders
// full and sends only its <main> content, or fragment when full is nil, with
// htmxTitle prepended when the body carries no title.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, htmxTitle string) {
	if !IsHTMXRequest(r) {
		if full == nil {
			full = fragment
		}
		if full != nil {
			templ.Handler(full).ServeHTTP(w, r)
		}
		return
	}

	target, fromFull := fragment, full != nil
	if fromFull {
		target = full
	}
	if target == nil {
		return
	}
	capture := newCaptureWriter()
	templ.Handler(target).ServeHTTP(capture, r)

	body := capture.body.Bytes()
	if fromFull {
		if mainContent, ok := extractMainContent(body); ok {
			body = mainContent
		}
	}
	body = prependTitle(body, htmxTitle)

	copyHeaders(w.Header(), capture.Header())
	if capture.statusCode != http.StatusOK {
		w.WriteHeader(capture.statusCode)
	}
	_, _ = w.Write(body)
}

// RenderFragment writes components back to back with status. Later components
// are typically out-of-band swaps such as toasts.
func RenderFragment(w http.ResponseWriter, r *http.Request, status int, components ...templ.Component) error {
	var body bytes.Buffer
	ctx := context.Background()
	if r != nil {
		ctx = r.Context()
	}
	for _, component := range components {
		if component == nil {
			continue
		}
		if err := component.Render(ctx, &body); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, err := w.Write(body.Bytes())
	return err
}

// Redirect sends the client to target: an HX-Redirect for htmx requests, a
// 303 otherwise.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMXRequest(r) {
		w.Header().Set(RedirectHeader, target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func prependTitle(body []byte, title string) []byte {
	if strings.TrimSpace(title) == "" {
		return body
	}
	if bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		return body
	}
	return append([]byte(title), body...)
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if strings.EqualFold(key, "Set-Cookie") {
			for _, value := range values {
				dst.Add(key, value)
			}
			continue
		}
		for _, value := range values {
			dst.Set(key, value)
		}
	}
}

func extractMainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openClose := bytes.IndexByte(body[start:], '>')
	if openClose < 0 {
		return nil, false
	}
	contentStart := start + openClose + 1
	end := bytes.LastIndex(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
