package enum

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func filePaths(t *testing.T, root string, opts Options) []string {
	t.Helper()
	visits, err := Enumerate(root, opts)
	if err != nil {
		t.Fatalf("enumerate failed: %v", err)
	}
	paths := make([]string, 0, len(visits))
	for _, v := range visits {
		rel, err := filepath.Rel(root, v.Path)
		if err != nil {
			t.Fatalf("rel failed for %s: %v", v.Path, err)
		}
		paths = append(paths, filepath.ToSlash(rel))
	}
	return paths
}

func assertPaths(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d paths %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalkYieldsFilesInLexicalOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "beta\n")
	writeFile(t, filepath.Join(root, "a.txt"), "alpha\n")
	writeFile(t, filepath.Join(root, "sub", "c.txt"), "gamma\n")

	got := filePaths(t, root, Options{RespectGitignore: true})
	assertPaths(t, got, []string{"a.txt", "b.txt", "sub/c.txt"})
}

func TestWalkEmitsDirectoryVisitsBeforeChildren(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "file.txt"), "data\n")

	var visits []FileVisit
	err := Walk(root, Options{RespectGitignore: true}, func(v FileVisit) error {
		visits = append(visits, v)
		return nil
	})
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	if len(visits) != 2 {
		t.Fatalf("got %d visits, want 2: %+v", len(visits), visits)
	}
	if !visits[0].IsDir || filepath.Base(visits[0].Path) != "sub" {
		t.Errorf("first visit should be the sub directory, got %+v", visits[0])
	}
	if visits[1].IsDir || filepath.Base(visits[1].Path) != "file.txt" {
		t.Errorf("second visit should be the file, got %+v", visits[1])
	}
}

func TestWalkHiddenSuppression(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "visible.txt"), "v\n")
	writeFile(t, filepath.Join(root, ".secret.txt"), "s\n")
	writeFile(t, filepath.Join(root, ".hidden", "inner.txt"), "i\n")

	respecting := filePaths(t, root, Options{RespectGitignore: true})
	assertPaths(t, respecting, []string{"visible.txt"})

	bypassing := filePaths(t, root, Options{RespectGitignore: false})
	assertPaths(t, bypassing, []string{".hidden/inner.txt", ".secret.txt", "visible.txt"})

	// Hidden status is reported on the visit when suppression is off.
	visits, err := Enumerate(root, Options{RespectGitignore: false})
	if err != nil {
		t.Fatalf("enumerate failed: %v", err)
	}
	for _, v := range visits {
		wantHidden := filepath.Base(v.Path) != "visible.txt"
		if v.Hidden != wantHidden {
			t.Errorf("visit %s: Hidden = %v, want %v", v.Path, v.Hidden, wantHidden)
		}
	}
}

func TestWalkGitignoreLayers(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "ignored.txt\n")
	writeFile(t, filepath.Join(root, ".git", "info", "exclude"), "excluded.txt\n")
	writeFile(t, filepath.Join(root, "ignored.txt"), "x\n")
	writeFile(t, filepath.Join(root, "excluded.txt"), "x\n")
	writeFile(t, filepath.Join(root, "kept.txt"), "x\n")

	respecting := filePaths(t, root, Options{RespectGitignore: true})
	assertPaths(t, respecting, []string{"kept.txt"})

	// Bypassing must surface every suppressed class at once: gitignored
	// files, excluded files, and hidden entries.
	bypassing := filePaths(t, root, Options{RespectGitignore: false})
	want := map[string]bool{"ignored.txt": true, "excluded.txt": true, "kept.txt": true}
	for _, p := range bypassing {
		delete(want, p)
	}
	if len(want) != 0 {
		t.Errorf("bypass walk missed %v (got %v)", want, bypassing)
	}
}

func TestWalkNestedGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", ".gitignore"), "*.tmp\n")
	writeFile(t, filepath.Join(root, "sub", "keep.txt"), "k\n")
	writeFile(t, filepath.Join(root, "sub", "drop.tmp"), "d\n")
	writeFile(t, filepath.Join(root, "top.tmp"), "t\n")

	got := filePaths(t, root, Options{RespectGitignore: true})
	assertPaths(t, got, []string{"sub/keep.txt", "top.tmp"})
}

func TestWalkIncludeExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "main.rs"), "fn main() {}\n")
	writeFile(t, filepath.Join(root, "src", "lib.rs"), "pub fn lib() {}\n")
	writeFile(t, filepath.Join(root, "readme.md"), "# readme\n")

	nilInclude := filePaths(t, root, Options{RespectGitignore: true})
	assertPaths(t, nilInclude, []string{"readme.md", "src/lib.rs", "src/main.rs"})

	included := filePaths(t, root, Options{
		RespectGitignore: true,
		IncludeGlobs:     []string{"**/*.rs"},
	})
	assertPaths(t, included, []string{"src/lib.rs", "src/main.rs"})

	// A present-but-empty include list matches nothing. Only nil means
	// unrestricted.
	emptyInclude := filePaths(t, root, Options{
		RespectGitignore: true,
		IncludeGlobs:     []string{},
	})
	assertPaths(t, emptyInclude, nil)

	excludeWins := filePaths(t, root, Options{
		RespectGitignore: true,
		IncludeGlobs:     []string{"**/*.rs"},
		ExcludeGlobs:     []string{"**/lib.rs"},
	})
	assertPaths(t, excludeWins, []string{"src/main.rs"})
}

func TestWalkBadGlobFailsFast(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a\n")

	_, err := Enumerate(root, Options{RespectGitignore: true, IncludeGlobs: []string{"[invalid"}})
	if err == nil {
		t.Fatal("expected an error for a malformed glob")
	}
}

func TestWalkMaxDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "1\n")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "2\n")
	writeFile(t, filepath.Join(root, "sub", "deep", "c.txt"), "3\n")

	unlimited := filePaths(t, root, Options{RespectGitignore: true})
	assertPaths(t, unlimited, []string{"a.txt", "sub/b.txt", "sub/deep/c.txt"})

	depth2 := filePaths(t, root, Options{RespectGitignore: true, MaxDepth: 2})
	assertPaths(t, depth2, []string{"a.txt", "sub/b.txt"})

	depth1 := filePaths(t, root, Options{RespectGitignore: true, MaxDepth: 1})
	assertPaths(t, depth1, []string{"a.txt"})
}

func TestWalkSingleFileRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.txt")
	writeFile(t, path, "content\n")

	visits, err := Enumerate(path, Options{RespectGitignore: true})
	if err != nil {
		t.Fatalf("enumerate failed: %v", err)
	}
	if len(visits) != 1 || visits[0].Path != path {
		t.Fatalf("got %+v, want exactly %s", visits, path)
	}
	if visits[0].Hidden {
		t.Error("only.txt should not be hidden")
	}

	// An explicitly named hidden file is still yielded.
	hidden := filepath.Join(dir, ".env")
	writeFile(t, hidden, "SECRET=1\n")
	visits, err = Enumerate(hidden, Options{RespectGitignore: true})
	if err != nil {
		t.Fatalf("enumerate failed: %v", err)
	}
	if len(visits) != 1 || !visits[0].Hidden {
		t.Fatalf("explicit hidden root should be yielded with Hidden set, got %+v", visits)
	}
}

func TestWalkTextOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "note.txt"), "plain text\n")
	if err := os.WriteFile(filepath.Join(root, "blob.bin"), []byte{0x00, 0x01, 0x02, 0xff, 0x00, 0x01, 0x02, 0xff}, 0644); err != nil {
		t.Fatalf("failed to write binary fixture: %v", err)
	}

	got := filePaths(t, root, Options{RespectGitignore: true, TextOnly: true})
	assertPaths(t, got, []string{"note.txt"})
}

func TestFoldPropagatesStepError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a\n")

	boom := errors.New("boom")
	_, err := Fold(root, Options{RespectGitignore: true}, 0, func(n int, v FileVisit) (int, error) {
		return n, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the step error to propagate, got %v", err)
	}
}

func TestFoldCountsFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a\n")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b\n")

	count, err := Fold(root, Options{RespectGitignore: true}, 0, func(n int, v FileVisit) (int, error) {
		if v.IsDir {
			return n, nil
		}
		return n + 1, nil
	})
	if err != nil {
		t.Fatalf("fold failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}
