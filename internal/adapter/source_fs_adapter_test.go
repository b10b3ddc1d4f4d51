package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "glyphs.dev/pkg/glyphs/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.cpp"), "int main() {}\n")

		nestedDir := filepath.Join(root, "nested", "deeper")
		mustMkdirAll(t, nestedDir)
		child := filepath.Join(nestedDir, "child.c")
		writeTestFile(t, child, "void f(void) {}\n")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file")
		}
	})

	t.Run("does not follow symlinked directories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.ino"), "void setup() {}\n")

		loop := filepath.Join(root, "loop")
		if err := os.Symlink(root, loop); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if containsPath(visited, filepath.Join(loop, "a.ino")) {
			t.Fatalf("Walk() followed a symlinked directory")
		}
	})

	t.Run("reports missing root to callback", func(t *testing.T) {
		adapter := NewSourceFSAdapter(afero.NewMemMapFs())

		var gotErr error
		_ = adapter.Walk("missing", func(_ string, _ os.FileInfo, err error) error {
			gotErr = err
			return err
		})

		require.Error(t, gotErr)
		assert.ErrorIs(t, gotErr, os.ErrNotExist)
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	adapter := NewSourceFSAdapter(fs)

	content := "const char* s = \"café ☕\";\n"
	require.NoError(t, afero.WriteFile(fs, "src/a.cpp", []byte(content), 0o644))

	got, err := adapter.ReadFile("src/a.cpp")
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	_, err = adapter.ReadFile("src/missing.cpp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.c")
	writeTestFile(t, path, "int main(void) { return 0; }\n")

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSourceFSAdapter_WriteFileAtomic(t *testing.T) {
	t.Run("overwrites and leaves no temp files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		target := filepath.Join(root, "unicodes.txt")
		writeTestFile(t, target, "0x3bb, 0x4e2d, 0x1f600")

		err := adapter.WriteFileAtomic(m.Path(target), []byte("0xe9"), 0o644)
		require.NoError(t, err)

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "0xe9", string(got))

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("writes empty content", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		adapter := NewSourceFSAdapter(fs)

		require.NoError(t, adapter.WriteFileAtomic("out/unicodes.txt", nil, 0o644))

		got, err := afero.ReadFile(fs, "out/unicodes.txt")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("failure keeps previous content", func(t *testing.T) {
		base := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(base, "unicodes.txt", []byte("0xe9"), 0o644))

		adapter := NewSourceFSAdapter(afero.NewReadOnlyFs(base))

		err := adapter.WriteFileAtomic("unicodes.txt", []byte("0x3bb"), 0o644)
		require.Error(t, err)

		got, err := afero.ReadFile(base, "unicodes.txt")
		require.NoError(t, err)
		assert.Equal(t, "0xe9", string(got))
	})

	t.Run("fails when parent is a file", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		blocker := filepath.Join(root, "blocker")
		writeTestFile(t, blocker, "")

		err := adapter.WriteFileAtomic(m.Path(filepath.Join(blocker, "unicodes.txt")), []byte("0xe9"), 0o644)
		require.Error(t, err)
	})
}

func TestLocalSourceFSAdapter_EvalSymlinks(t *testing.T) {
	t.Run("resolves links on the host filesystem", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		target := filepath.Join(root, "shared")
		mustMkdirAll(t, target)

		link := filepath.Join(root, "src")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		resolved, err := adapter.EvalSymlinks(m.Path(link))
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(target)
		require.NoError(t, err)
		assert.Equal(t, m.Path(want), resolved)
	})

	t.Run("cleans paths on memory filesystems", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("src/display", 0o755))

		adapter := NewSourceFSAdapter(fs)

		resolved, err := adapter.EvalSymlinks("./src/display/")
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join("src", "display")), resolved)

		_, err = adapter.EvalSymlinks("missing")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLocalSourceFSAdapter_FindProjectRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/firmware/src/display", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/work/firmware/glyphs.yaml", []byte("version: 1\n"), 0o644))

	adapter := NewSourceFSAdapter(fs)

	root, err := adapter.FindProjectRoot("/work/firmware/src/display", "glyphs.yaml")
	require.NoError(t, err)
	assert.Equal(t, m.Path("/work/firmware"), root)

	root, err = adapter.FindProjectRoot("/work/firmware", "glyphs.yaml")
	require.NoError(t, err)
	assert.Equal(t, m.Path("/work/firmware"), root)

	_, err = adapter.FindProjectRoot("/work", "glyphs.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "glyphs.yaml not found")
}

func TestLocalSourceFSAdapter_RelPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/src/display/font.cpp")

	rel, err := adapter.RelPath(base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("src", "display", "font.cpp") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("src", "display", "font.cpp"))
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
