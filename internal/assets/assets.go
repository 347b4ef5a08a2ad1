// Package assets compiles stylesheet sources into the static directory.
package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"go.uber.org/zap"
)

const cssMediaType = "text/css"

// Compiler minifies stylesheets.
type Compiler struct {
	m      *minify.M
	logger *zap.SugaredLogger
}

// NewCompiler creates a stylesheet compiler.
func NewCompiler(logger *zap.SugaredLogger) *Compiler {
	m := minify.New()
	m.AddFunc(cssMediaType, css.Minify)
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Compiler{m: m, logger: logger}
}

// Compile writes a minified copy of every .css file under srcDir to the
// same relative path under destDir. It returns the number of files written.
func (c *Compiler) Compile(srcDir, destDir string) (int, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		return 0, fmt.Errorf("stylesheet source directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("stylesheet source %s is not a directory", srcDir)
	}

	count := 0
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".css") {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, rel)
		if err := c.compileFile(path, dest); err != nil {
			return fmt.Errorf("compile %s: %w", rel, err)
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}

	c.logger.Infow("stylesheets compiled", "src", srcDir, "dest", destDir, "files", count)
	return count, nil
}

func (c *Compiler) compileFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	tmp := dest + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := c.m.Minify(cssMediaType, out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dest)
}
