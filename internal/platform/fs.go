package platform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// FileMode and DirMode are applied to everything the installer creates.
const (
	FileMode os.FileMode = 0644
	DirMode  os.FileMode = 0755
)

// FS is the set of filesystem operations used during an installation.
// Read operations always hit the real filesystem.
type FS interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	MkdirAll(path string) error
	// WriteFile replaces path with data, creating parent directories.
	WriteFile(path string, data []byte) error
	// AppendLine rewrites path with line appended on its own line.
	AppendLine(path, line string) error
	// CopyTree merges src into dst, overwriting files that already exist.
	CopyTree(src, dst string) error
	RemoveAll(path string) error
}

// Exists reports whether path exists.
func Exists(fsys FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(fsys FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates path unless it already exists.
func EnsureDir(fsys FS, path string) error {
	if Exists(fsys, path) {
		return nil
	}
	return fsys.MkdirAll(path)
}

// WriteIfMissing writes data to path only when nothing exists there yet.
// It reports whether a write was issued.
func WriteIfMissing(fsys FS, path string, data []byte) (bool, error) {
	if _, err := fsys.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("inspecting %s: %w", path, err)
	}
	if err := fsys.WriteFile(path, data); err != nil {
		return false, err
	}
	return true, nil
}

// AppendLineIfMissing appends line to path unless a line with exactly that
// text is already present. A missing file is created holding just the line.
func AppendLineIfMissing(fsys FS, path, line string) (bool, error) {
	content, err := fsys.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return WriteIfMissing(fsys, path, []byte(line+"\n"))
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if HasLine(string(content), line) {
		return false, nil
	}
	if err := fsys.AppendLine(path, line); err != nil {
		return false, err
	}
	return true, nil
}

// HasLine reports whether content contains line as a whole line.
func HasLine(content, line string) bool {
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimRight(l, "\r") == line {
			return true
		}
	}
	return false
}

// OS applies changes to the real filesystem.
type OS struct{}

func (OS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

func (OS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (OS) MkdirAll(path string) error {
	if err := os.MkdirAll(path, DirMode); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

func (OS) WriteFile(path string, data []byte) error {
	return writeAtomic(path, data, FileMode)
}

func (OS) AppendLine(path, line string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(existing)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += line + "\n"
	return writeAtomic(path, []byte(content), FileMode)
}

func (OS) CopyTree(src, dst string) error {
	if err := copyDir(src, dst); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return nil
}

func (OS) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// DryRun describes mutations on Out instead of performing them.
type DryRun struct {
	Out io.Writer
}

// NewDryRun returns a DryRun that prints to w.
func NewDryRun(w io.Writer) *DryRun {
	return &DryRun{Out: w}
}

func (d *DryRun) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

func (d *DryRun) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (d *DryRun) MkdirAll(path string) error {
	d.printf("mkdir -p %s", path)
	return nil
}

func (d *DryRun) WriteFile(path string, data []byte) error {
	d.printf("write %s", path)
	return nil
}

func (d *DryRun) AppendLine(path, line string) error {
	d.printf("append line to %s: %s", path, line)
	return nil
}

func (d *DryRun) CopyTree(src, dst string) error {
	d.printf("copytree %s -> %s", src, dst)
	return nil
}

func (d *DryRun) RemoveAll(path string) error {
	d.printf("rm -rf %s", path)
	return nil
}

func (d *DryRun) printf(format string, args ...any) {
	fmt.Fprintf(d.Out, "[dry-run] "+format+"\n", args...)
}

// writeAtomic writes data to a temp file beside path and renames it into
// place, so readers never observe a partially written file.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}

// Chmod sets file permissions. Windows has no Unix permission bits, so it is
// a no-op there.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
