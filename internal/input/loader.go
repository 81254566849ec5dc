package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var extensions = []string{"", ".gz", ".zst"}

type Loader struct {
	dir   string
	stdin io.Reader
}

func NewLoader(dir string, stdin io.Reader) *Loader {
	return &Loader{dir: dir, stdin: stdin}
}

// Load returns the text at path. "-" reads stdin; files ending in .gz or .zst
// are decompressed.
func (l *Loader) Load(path string) (string, error) {
	if path == Stdin {
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open input %s: %w", path, err)
	}
	defer f.Close()

	r, closeFn, err := decompressor(path, f)
	if err != nil {
		return "", fmt.Errorf("failed to open input %s: %w", path, err)
	}
	defer closeFn()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return string(data), nil
}

// Resolve picks the input file for a puzzle. An explicit path wins, then the
// configured file name inside the input directory, then dayNN.txt with any
// supported compression suffix.
func (l *Loader) Resolve(path, configured string, day int) (string, error) {
	if path != "" {
		return path, nil
	}
	if configured != "" {
		if filepath.IsAbs(configured) {
			return configured, nil
		}
		return filepath.Join(l.dir, configured), nil
	}

	base := filepath.Join(l.dir, fmt.Sprintf("day%02d.txt", day))
	for _, ext := range extensions {
		candidate := base + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("no input found for day %d in %s: %w", day, l.dir, fs.ErrNotExist)
}

func decompressor(path string, r io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return gz, func() { _ = gz.Close() }, nil
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	default:
		return r, func() {}, nil
	}
}
