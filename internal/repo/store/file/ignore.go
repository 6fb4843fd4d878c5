package file

import (
	"bufio"
	"bytes"
	"path"
	"path/filepath"
	"strings"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
)

type Ignore struct {
	static  map[string]bool
	pattern []string
}

// NewIgnore loads the defaults and the patterns of ignoreFile, if present.
func NewIgnore(fsys fs.FS, ignoreFile string) *Ignore {
	m := &Ignore{static: map[string]bool{config.RepoDir: true}}

	data, err := fsys.ReadFile(ignoreFile)
	if err != nil {
		return m
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.pattern = append(m.pattern, line)
	}
	return m
}

// Match returns true if the path should be ignored. Patterns without a
// slash also match the last path element.
func (m *Ignore) Match(p string) bool {
	clean := path.Clean(filepath.ToSlash(p))

	// static exact match
	if m.static[clean] || m.static[path.Base(clean)] {
		return true
	}

	// pattern match
	for _, pat := range m.pattern {
		if matchPattern(pat, clean) {
			return true
		}
		if !strings.Contains(pat, "/") && matchPattern(pat, path.Base(clean)) {
			return true
		}
	}

	return false
}

// matchPattern handles *, ?, and ** like Git
func matchPattern(pattern, p string) bool {
	pattern = filepath.ToSlash(pattern)
	if len(pattern) > 1 {
		pattern = strings.TrimSuffix(pattern, "/")
	}
	return matchSegments(strings.Split(pattern, "/"), strings.Split(p, "/"))
}

// matchSegments matches pattern segments recursively
func matchSegments(pats, parts []string) bool {
	for len(pats) > 0 {
		p := pats[0]
		pats = pats[1:]

		if p == "**" {
			if len(pats) == 0 {
				return true // trailing ** matches anything
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(pats, parts[i:]) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}

		ok, _ := path.Match(p, parts[0])
		if !ok {
			return false
		}

		parts = parts[1:]
	}

	return len(parts) == 0
}
