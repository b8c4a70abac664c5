// Package imgres resolves show poster references. A poster path may point at
// a file that exists under the sibling extension instead (.jpg vs .jpeg), so
// resolution probes the primary path, then exactly one extension swap, then
// gives up with a placeholder. Never more than two probes.
package imgres

import (
	"os"
	"strings"
)

// Placeholder is the glyph shown when a poster cannot be resolved.
const Placeholder = "🖼"

// Stat is the probe used to test whether a poster file exists. Swappable in
// tests; defaults to os.Stat.
type Stat func(path string) (os.FileInfo, error)

// Result describes where poster resolution landed.
type Result struct {
	Path     string // resolved path, empty when falling back
	Fallback bool   // true when the placeholder should render instead
}

// Resolve returns the usable poster path for ref, or a fallback Result.
// An empty ref is an immediate fallback with no probing.
func Resolve(ref string, stat Stat) Result {
	if ref == "" {
		return Result{Fallback: true}
	}
	if stat == nil {
		stat = os.Stat
	}

	if _, err := stat(ref); err == nil {
		return Result{Path: ref}
	}

	if alt := swapExt(ref); alt != "" {
		if _, err := stat(alt); err == nil {
			return Result{Path: alt}
		}
	}

	return Result{Fallback: true}
}

// swapExt flips .jpg to .jpeg and back. Any other extension has no sibling
// to try, so it returns "".
func swapExt(path string) string {
	switch {
	case strings.HasSuffix(path, ".jpeg"):
		return strings.TrimSuffix(path, ".jpeg") + ".jpg"
	case strings.HasSuffix(path, ".jpg"):
		return strings.TrimSuffix(path, ".jpg") + ".jpeg"
	default:
		return ""
	}
}
