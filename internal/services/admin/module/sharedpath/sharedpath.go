// Package sharedpath splits route suffixes for the console's route modules.
package sharedpath

import "strings"

// SplitPathParts returns the non-empty, trimmed segments of a slash-delimited
// route suffix such as "s-1/approve".
func SplitPathParts(path string) []string {
	parts := make([]string, 0, strings.Count(path, "/")+1)
	for part := range strings.SplitSeq(path, "/") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
