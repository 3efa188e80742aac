package templates

import (
	"strings"
)

// BreadcrumbItem represents one breadcrumb entry in a page trail.
type BreadcrumbItem struct {
	// Label is the visible breadcrumb text.
	Label string
	// URL is the optional destination for this breadcrumb entry.
	URL string
}

// BreadcrumbSegmentLabeler returns the label for a path segment.
//
// segment is the individual path segment while fullPath is the full accumulated path
// to the segment (for example, "/shops/abc").
type BreadcrumbSegmentLabeler func(segment string, fullPath string, loc Localizer) string

// PathBreadcrumbOptions controls how a breadcrumb trail is built from a path.
type PathBreadcrumbOptions struct {
	// IncludeRoot adds an overview root breadcrumb when enabled.
	IncludeRoot bool
	// RootPath is the URL used for the root breadcrumb when IncludeRoot is true.
	RootPath string
	// RootLabel is the localization key (or fallback string) for the root breadcrumb.
	RootLabel string
	// LabelForSegment resolves labels for each non-root segment.
	LabelForSegment BreadcrumbSegmentLabeler
}

// BuildPathBreadcrumbs builds the console trail for a request path.
func BuildPathBreadcrumbs(path string, loc Localizer) []BreadcrumbItem {
	return BuildPathBreadcrumbsWithOptions(path, loc, PathBreadcrumbOptions{
		IncludeRoot:     true,
		RootPath:        "/",
		RootLabel:       "nav.overview",
		LabelForSegment: consolePathSegmentLabel,
	})
}

// BuildPathBreadcrumbsWithOptions builds breadcrumb items for a request path using
// caller-provided labeling behavior.
func BuildPathBreadcrumbsWithOptions(path string, loc Localizer, options PathBreadcrumbOptions) []BreadcrumbItem {
	cleanPath := strings.Trim(strings.TrimSpace(path), "/")
	if cleanPath == "" {
		return []BreadcrumbItem{}
	}
	if options.LabelForSegment == nil {
		options.LabelForSegment = defaultSegmentLabel
	}

	segments := make([]string, 0, 4)
	for _, segment := range strings.Split(cleanPath, "/") {
		if segment = strings.TrimSpace(segment); segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) == 0 {
		return []BreadcrumbItem{}
	}

	breadcrumbs := make([]BreadcrumbItem, 0, len(segments)+1)
	if options.IncludeRoot {
		rootPath := strings.TrimSpace(options.RootPath)
		if rootPath == "" {
			rootPath = "/"
		}
		breadcrumbs = append(breadcrumbs, BreadcrumbItem{Label: T(loc, options.RootLabel), URL: rootPath})
	}

	pathSoFar := ""
	for index, segment := range segments {
		pathSoFar += "/" + segment
		label := options.LabelForSegment(segment, pathSoFar, loc)
		if strings.TrimSpace(label) == "" {
			label = segment
		}
		breadcrumb := BreadcrumbItem{Label: label}
		if index < len(segments)-1 || len(segments) == 1 {
			breadcrumb.URL = pathSoFar
		}
		breadcrumbs = append(breadcrumbs, breadcrumb)
	}
	return breadcrumbs
}

func consolePathSegmentLabel(segment string, fullPath string, loc Localizer) string {
	if strings.Count(fullPath, "/") != 1 {
		return segment
	}
	switch segment {
	case "shops":
		return T(loc, "nav.shops")
	case "users":
		return T(loc, "nav.users")
	case "orders":
		return T(loc, "nav.orders")
	default:
		return segment
	}
}

func defaultSegmentLabel(segment string, _ string, _ Localizer) string {
	return segment
}
