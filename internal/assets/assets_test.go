package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCompiler_Compile(t *testing.T) {
	t.Run("minifies css preserving layout", func(t *testing.T) {
		src := t.TempDir()
		dest := t.TempDir()
		writeFile(t, filepath.Join(src, "style.css"), "body {\n  margin: 0px;\n}\n")
		writeFile(t, filepath.Join(src, "pages", "teams.css"), "table  { border-collapse : collapse ; }\n")
		writeFile(t, filepath.Join(src, "README.md"), "not a stylesheet")

		count, err := NewCompiler(zap.NewNop().Sugar()).Compile(src, dest)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		style, err := os.ReadFile(filepath.Join(dest, "style.css"))
		require.NoError(t, err)
		assert.Equal(t, "body{margin:0}", string(style))

		teams, err := os.ReadFile(filepath.Join(dest, "pages", "teams.css"))
		require.NoError(t, err)
		assert.Equal(t, "table{border-collapse:collapse}", string(teams))

		_, err = os.Stat(filepath.Join(dest, "README.md"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("overwrites previous output", func(t *testing.T) {
		src := t.TempDir()
		dest := t.TempDir()
		writeFile(t, filepath.Join(dest, "style.css"), "stale")
		writeFile(t, filepath.Join(src, "style.css"), "a { color: #000000; }")

		_, err := NewCompiler(nil).Compile(src, dest)
		require.NoError(t, err)

		out, err := os.ReadFile(filepath.Join(dest, "style.css"))
		require.NoError(t, err)
		assert.Equal(t, "a{color:#000}", string(out))
	})

	t.Run("missing source directory", func(t *testing.T) {
		_, err := NewCompiler(nil).Compile(filepath.Join(t.TempDir(), "missing"), t.TempDir())
		assert.Error(t, err)
	})

	t.Run("source is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "style.css")
		writeFile(t, file, "a{}")
		_, err := NewCompiler(nil).Compile(file, t.TempDir())
		assert.ErrorContains(t, err, "is not a directory")
	})
}
