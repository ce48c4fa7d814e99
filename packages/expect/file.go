package expect

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/verity/packages/core/failure"
	"github.com/abdul-hamid-achik/verity/packages/core/represent"
)

// FileAssert asserts on a filesystem path.
type FileAssert struct {
	t    TestingT
	path string
	desc string
	opts represent.Options
}

// File begins an assertion chain on a filesystem path.
func File(t TestingT, path string) *FileAssert {
	return &FileAssert{t: t, path: path, opts: represent.Default()}
}

// As sets a description included in failure messages.
func (a *FileAssert) As(format string, args ...any) *FileAssert {
	a.desc = fmt.Sprintf(format, args...)
	return a
}

func (a *FileAssert) fail(f *failure.Failure) {
	helper(a.t)
	failure.Report(a.t, f.WithDescription(a.desc))
}

func (a *FileAssert) stat() (os.FileInfo, bool) {
	info, err := os.Stat(a.path)
	if err != nil {
		a.fail(failure.New("expected %q to exist: %v", a.path, err))
		return nil, false
	}
	return info, true
}

// Exists asserts the path exists.
func (a *FileAssert) Exists() *FileAssert {
	helper(a.t)
	if _, err := os.Stat(a.path); err != nil {
		a.fail(failure.New("expected %q to exist: %v", a.path, err))
	}
	return a
}

// DoesNotExist asserts the path does not exist.
func (a *FileAssert) DoesNotExist() *FileAssert {
	helper(a.t)
	if _, err := os.Stat(a.path); err == nil {
		a.fail(failure.New("expected %q not to exist", a.path))
	}
	return a
}

// IsRegularFile asserts the path is a regular file.
func (a *FileAssert) IsRegularFile() *FileAssert {
	helper(a.t)
	if info, ok := a.stat(); ok && !info.Mode().IsRegular() {
		a.fail(failure.New("expected %q to be a regular file but mode is %s", a.path, info.Mode()))
	}
	return a
}

// IsDirectory asserts the path is a directory.
func (a *FileAssert) IsDirectory() *FileAssert {
	helper(a.t)
	if info, ok := a.stat(); ok && !info.IsDir() {
		a.fail(failure.New("expected %q to be a directory but mode is %s", a.path, info.Mode()))
	}
	return a
}

// IsReadable asserts the owner read permission bit is set.
func (a *FileAssert) IsReadable() *FileAssert {
	helper(a.t)
	if info, ok := a.stat(); ok && info.Mode().Perm()&0o400 == 0 {
		a.fail(failure.New("expected %q to be readable but permissions are %s",
			a.path, info.Mode().Perm()))
	}
	return a
}

// IsWritable asserts the owner write permission bit is set.
func (a *FileAssert) IsWritable() *FileAssert {
	helper(a.t)
	if info, ok := a.stat(); ok && info.Mode().Perm()&0o200 == 0 {
		a.fail(failure.New("expected %q to be writable but permissions are %s",
			a.path, info.Mode().Perm()))
	}
	return a
}

// HasExtension asserts the path's extension, dot included.
func (a *FileAssert) HasExtension(ext string) *FileAssert {
	helper(a.t)
	if got := filepath.Ext(a.path); got != ext {
		a.fail(failure.New("expected %q to have extension %q but was %q", a.path, ext, got))
	}
	return a
}

// IsEmpty asserts the file exists and has size zero.
func (a *FileAssert) IsEmpty() *FileAssert {
	helper(a.t)
	if info, ok := a.stat(); ok && info.Size() != 0 {
		a.fail(failure.New("expected %q to be empty but size is %d bytes", a.path, info.Size()))
	}
	return a
}

// HasSize asserts the file's size in bytes.
func (a *FileAssert) HasSize(size int64) *FileAssert {
	helper(a.t)
	if info, ok := a.stat(); ok && info.Size() != size {
		a.fail(failure.New("expected %q to have size %d but was %d", a.path, size, info.Size()))
	}
	return a
}

// HasContent asserts the file's content is exactly content.
func (a *FileAssert) HasContent(content string) *FileAssert {
	helper(a.t)
	data, err := os.ReadFile(a.path)
	if err != nil {
		a.fail(failure.New("failed to read %q: %v", a.path, err))
		return a
	}
	if string(data) != content {
		a.fail(failure.ShouldBeEqual(string(data), content, a.opts).
			WithDetail("file: %s", a.path))
	}
	return a
}

// ContentContains asserts the file's content contains sub.
func (a *FileAssert) ContentContains(sub string) *FileAssert {
	helper(a.t)
	data, err := os.ReadFile(a.path)
	if err != nil {
		a.fail(failure.New("failed to read %q: %v", a.path, err))
		return a
	}
	if !strings.Contains(string(data), sub) {
		a.fail(failure.ShouldContain(string(data), sub, a.opts).
			WithDetail("file: %s", a.path))
	}
	return a
}

// HasSameContentAs asserts both files have identical bytes.
func (a *FileAssert) HasSameContentAs(other string) *FileAssert {
	helper(a.t)
	got, err := os.ReadFile(a.path)
	if err != nil {
		a.fail(failure.New("failed to read %q: %v", a.path, err))
		return a
	}
	want, err := os.ReadFile(other)
	if err != nil {
		a.fail(failure.New("failed to read %q: %v", other, err))
		return a
	}
	if !bytes.Equal(got, want) {
		a.fail(failure.New("expected %q to have the same content as %q", a.path, other).
			WithDetail("sizes: %d vs %d bytes", len(got), len(want)))
	}
	return a
}
