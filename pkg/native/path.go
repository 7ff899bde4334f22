package native

import (
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Path is a file-system path exactly as a backend produced it. The bytes are
// not guaranteed to be valid UTF-8.
type Path string

// Text returns the path as text, or false when the bytes are not valid UTF-8
func (p Path) Text() (string, bool) {
	if !utf8.ValidString(string(p)) {
		return "", false
	}
	return string(p), true
}

// fileName returns the final element of p. Trailing separators and "."
// elements are skipped. Roots, volume names and paths ending in ".." have no
// file name, in which case the empty string is returned.
func fileName(p string) string {
	end := len(p)
	for end > 0 {
		if os.IsPathSeparator(p[end-1]) {
			end--
			continue
		}
		if p[end-1] == '.' && (end == 1 || os.IsPathSeparator(p[end-2])) {
			end--
			continue
		}
		break
	}
	p = p[:end]

	start := end
	for start > 0 && !os.IsPathSeparator(p[start-1]) {
		start--
	}
	name := p[start:]

	if name == ".." {
		return ""
	}
	if start == 0 && name != "" && filepath.VolumeName(p) == p {
		return ""
	}
	return name
}
