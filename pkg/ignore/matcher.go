package ignore

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Matcher answers whether a path under root is excluded by the active
// layers. Per-directory .gitignore files are compiled as the walk enters
// each directory, so rules apply only below the directory that declares
// them. Deeper sources override shallower ones, which preserves gitignore
// negation across files.
type Matcher struct {
	root          string
	layers        Layers
	caseSensitive bool

	global  *gitignore.GitIgnore
	exclude *gitignore.GitIgnore
	perDir  map[string]*gitignore.GitIgnore
}

// NewMatcher builds a matcher for a walk rooted at root. The repository
// exclude file and the global excludes file are loaded once here; the
// per-directory .gitignore stack grows via LoadDir during the walk.
func NewMatcher(root string, layers Layers, caseSensitive bool) *Matcher {
	m := &Matcher{
		root:          root,
		layers:        layers,
		caseSensitive: caseSensitive,
		perDir:        make(map[string]*gitignore.GitIgnore),
	}
	if layers.GitExclude {
		m.exclude = m.compileFile(filepath.Join(root, ".git", "info", "exclude"))
	}
	if layers.GitGlobal {
		if p := globalExcludesPath(); p != "" {
			m.global = m.compileFile(p)
		}
	}
	return m
}

// LoadDir compiles dir/.gitignore when present. The walker calls this for
// the root and every directory it descends into, parents before children.
func (m *Matcher) LoadDir(dir string) {
	if !m.layers.Gitignore {
		return
	}
	if gi := m.compileFile(filepath.Join(dir, ".gitignore")); gi != nil {
		m.perDir[filepath.Clean(dir)] = gi
	}
}

// Ignored reports whether the entry at path is excluded. Sources are
// consulted from weakest to strongest (global, repo exclude, .gitignore
// files root-down); each source that has an opinion overwrites the
// running decision, so a deeper negation can re-include a path.
func (m *Matcher) Ignored(path string, isDir bool) bool {
	rel, err := filepath.Rel(m.root, path)
	if err != nil || rel == "." {
		return false
	}
	rel = filepath.ToSlash(rel)

	ignored := false
	if m.global != nil {
		if matched, decided := m.match(m.global, rel, isDir); decided {
			ignored = matched
		}
	}
	if m.exclude != nil {
		if matched, decided := m.match(m.exclude, rel, isDir); decided {
			ignored = matched
		}
	}

	// Walk the directory chain from root toward the entry, matching each
	// .gitignore against the path relative to its own directory.
	dir := filepath.Clean(m.root)
	segs := strings.Split(rel, "/")
	for i := 0; i < len(segs); i++ {
		if gi, ok := m.perDir[dir]; ok {
			sub := strings.Join(segs[i:], "/")
			if matched, decided := m.match(gi, sub, isDir); decided {
				ignored = matched
			}
		}
		dir = filepath.Join(dir, segs[i])
	}
	return ignored
}

// match runs one gitignore source. decided is false when no pattern in the
// source applied to the path at all.
func (m *Matcher) match(gi *gitignore.GitIgnore, rel string, isDir bool) (matched, decided bool) {
	probe := rel
	if !m.caseSensitive {
		probe = strings.ToLower(probe)
	}
	if ok, pat := gi.MatchesPathHow(probe); pat != nil {
		return ok, true
	}
	if isDir {
		if ok, pat := gi.MatchesPathHow(probe + "/"); pat != nil {
			return ok, true
		}
	}
	return false, false
}

// compileFile loads a gitignore-format file, lowercasing its patterns when
// matching case-insensitively. Unreadable files contribute no rules.
func (m *Matcher) compileFile(path string) *gitignore.GitIgnore {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	if !m.caseSensitive {
		for i, l := range lines {
			lines[i] = strings.ToLower(l)
		}
	}
	return gitignore.CompileIgnoreLines(lines...)
}
