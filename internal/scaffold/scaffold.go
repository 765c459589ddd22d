package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Result holds the outcome of a generation run.
type Result struct {
	OutputDir   string   // module root
	Directories []string // created, relative to the output root
	Files       []string // written, relative to the output root
}

// FileSystemError reports a failed directory creation or file write. Its
// message is the underlying error's.
type FileSystemError struct {
	Op   string // "create directory" or "write file"
	Path string
	Err  error
}

func (e *FileSystemError) Error() string { return e.Err.Error() }

func (e *FileSystemError) Unwrap() error { return e.Err }

// Generate renders the module described by cfg and writes it under root.
// All directories are created before any file is written. Existing files
// are overwritten. The first filesystem failure stops the run; files
// already written are left in place.
func Generate(cfg Config, root string) (*Result, error) {
	return generate(cfg, root, time.Now())
}

func generate(cfg Config, root string, now time.Time) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	files, err := Render(cfg, now)
	if err != nil {
		return nil, err
	}

	moduleDir := filepath.Join(root, cfg.ModuleName)
	if abs, err := filepath.Abs(moduleDir); err == nil {
		moduleDir = abs
	}
	result := &Result{OutputDir: moduleDir}

	for _, dir := range Directories(cfg) {
		p := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(p, 0755); err != nil {
			return nil, &FileSystemError{Op: "create directory", Path: p, Err: err}
		}
		result.Directories = append(result.Directories, dir)
	}

	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := writeFile(p, []byte(f.Content)); err != nil {
			return nil, &FileSystemError{Op: "write file", Path: p, Err: err}
		}
		result.Files = append(result.Files, f.Path)
	}

	return result, nil
}

// writeFile replaces path atomically: content goes to a temporary file in
// the same directory which is then renamed over the target.
func writeFile(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
