// Package testdata serves excerpts of Unicode Character Database files
// to package tests. The excerpts under ucd/ cover the handful of
// characters the tests exercise; regenerate them from the full files at
// https://www.unicode.org/Public/UCD/latest/ucd/ when tests need more.
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Reader returns a reader over the given UCD excerpt for testing.
func Reader(file string) (io.Reader, error) {
	data, err := os.ReadFile(Path(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Path returns the path of the given UCD excerpt.
func Path(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}
