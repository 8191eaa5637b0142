package engine

import "strings"

// apiRootSegment is the fixed marker segment resources hang off:
// /api/<resource>/...
const apiRootSegment = "api"

// idToken is the parameter name that marks a single-item path.
const idToken = "id"

func splitPath(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func isParam(seg string) bool {
	return strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}

func paramName(seg string) string {
	return strings.TrimSuffix(strings.TrimPrefix(seg, "{"), "}")
}

// isItemPath reports whether the path addresses a single item, i.e. carries
// the {id} parameter token. Paths without it are collection paths.
func isItemPath(p string) bool {
	for _, seg := range splitPath(p) {
		if isParam(seg) && paramName(seg) == idToken {
			return true
		}
	}
	return false
}
