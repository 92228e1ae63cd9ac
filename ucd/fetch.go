package ucd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// BaseURL is where Fetch downloads missing UCD files from.
const BaseURL = "https://www.unicode.org/Public/UCD/latest/ucd/"

// Fetch opens the UCD file name (e.g. "UnicodeData.txt") in dir,
// downloading and caching it from unicode.org first if it is not
// present. The caller closes the returned file.
func Fetch(dir, name string) (*os.File, error) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return os.Open(path)
	}
	tracer().Infof("file %s not found, downloading from unicode.org …", path)
	if err := download(BaseURL+name, path); err != nil {
		return nil, err
	}
	tracer().Infof("download done")
	return os.Open(path)
}

func download(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return f.Close()
}
