package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Loading renders the neutral loading ring.
func Loading() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return NewMarkup(w).
			Raw(`<div class="flex justify-center py-10" role="status">`).
			Raw(`<span class="loading loading-ring loading-md"></span>`).
			Raw(`</div>`).
			Err()
	})
}

// TableSkeleton renders placeholder rows while a table fragment loads.
func TableSkeleton(rows int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := NewMarkup(w).Raw(`<div class="space-y-3" aria-busy="true">`)
		for range max(rows, 1) {
			m.Raw(`<div class="skeleton h-12 w-full"></div>`)
		}
		return m.Raw(`</div>`).Err()
	})
}
