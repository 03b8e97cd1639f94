// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package paramunit

import (
	"os"
	fp "path/filepath"
	"runtime"
)

// FS provides filesystem operations specifically for testing, i.e.
// without error handling, with preset file/dir-modes and restricted to
// temporary or testdata directories.  Failing file system operations
// fatal the associated test.
type FS struct {
	t  *T
	td *Dir
}

// FS returns a filesystem handle for the receiving test.
func (t *T) FS() *FS {
	if t.fs == nil {
		t.fs = &FS{t: t}
	}
	return t.fs
}

// Tmp creates a new unique temporary directory bound to the
// associated test which is removed automatically once the test and
// all its subtests complete.
func (fs *FS) Tmp() *Dir {
	return &Dir{t: fs.t, path: fs.t.GoT().TempDir()}
}

// Data returns the calling test-file's package testdata directory
// creating it if necessary.
func (fs *FS) Data() *Dir {
	if fs.td != nil {
		return fs.td
	}
	_, f, _, ok := runtime.Caller(1)
	if !ok {
		fs.t.Fatal("paramunit: fs: testdata: can't determine caller")
	}
	td := fp.Join(fp.Dir(f), "testdata")
	if _, err := os.Stat(td); err != nil {
		if err := os.MkdirAll(td, 0711); err != nil {
			fs.t.Fatalf("paramunit: fs: testdata: create: %v", err)
		}
	}
	fs.td = &Dir{t: fs.t, path: td}
	return fs.td
}

// Dir provides file system operations inside its path, i.e. either a
// temporary directory or (in) a package's testdata directory.  It
// replaces error handling by failing the test.  The zero value of a
// Dir instance is *NOT* usable.  Use [T.FS] to obtain a Dir-instance.
type Dir struct {
	t    *T
	path string
}

// Path returns the directory's path.
func (d *Dir) Path() string { return d.path }

// Mk creates given directory-names inside the receiving directory and
// returns the innermost created directory.
func (d *Dir) Mk(names ...string) *Dir {
	path := fp.Join(append([]string{d.path}, names...)...)
	if err := os.MkdirAll(path, 0711); err != nil {
		d.t.Fatalf("paramunit: fs: dir: mk: %v", err)
	}
	return &Dir{t: d.t, path: path}
}

// MkFile creates a file with given name and content inside the
// receiving directory.
func (d *Dir) MkFile(name string, content []byte) {
	path := fp.Join(d.path, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		d.t.Fatalf("paramunit: fs: dir: mk-file: %v", err)
	}
}

// FileContent returns the contents of the files with given names of
// the receiving directory in given order.
func (d *Dir) FileContent(names ...string) [][]byte {
	cc := make([][]byte, 0, len(names))
	for _, name := range names {
		bb, err := os.ReadFile(fp.Join(d.path, name))
		if err != nil {
			d.t.Fatalf("paramunit: fs: dir: file-content: %v", err)
		}
		cc = append(cc, bb)
	}
	return cc
}
