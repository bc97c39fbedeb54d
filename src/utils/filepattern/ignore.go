package filepattern

import "strings"

// IsFileIgnored reports whether filePath, which must live under basePath,
// matches any of the configured ignore patterns.
//
// Two pattern shapes are supported:
//   - absolute patterns ("/vendor", "/build/out") anchor at the workspace
//     root and must cover whole path segments;
//   - relative patterns ("node_modules", "tmp/cache") match a run of whole
//     path segments anywhere under the root.
//
// A pattern never matches a partial segment: "/ven" does not ignore
// "/vendor/gem.rb".
func IsFileIgnored(basePath, filePath string, absoluteIgnorePatterns, relativeIgnorePatterns []string) bool {
	// relPath keeps its leading slash, so segment boundaries are always
	// delimited by '/' on both sides.
	relPath := strings.TrimPrefix(filePath, basePath)
	for _, pattern := range absoluteIgnorePatterns {
		if strings.HasPrefix(relPath, pattern) && segmentEndsAt(relPath, len(pattern)) {
			return true
		}
	}
	for _, pattern := range relativeIgnorePatterns {
		needle := pattern
		if !strings.HasPrefix(needle, "/") {
			needle = "/" + needle
		}
		pos := 0
		for {
			i := strings.Index(relPath[pos:], needle)
			if i < 0 {
				break
			}
			pos += i
			if segmentEndsAt(relPath, pos+len(needle)) {
				return true
			}
			pos += len(needle)
		}
	}
	return false
}

func segmentEndsAt(path string, i int) bool {
	return i == len(path) || path[i] == '/'
}
