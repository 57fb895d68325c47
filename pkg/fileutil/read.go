package fileutil

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/thoreinstein/kvcheck/internal/errors"
)

// MaxFileSize is the maximum size of a config or schema file (1MB).
const MaxFileSize = 1024 * 1024

// Sentinel errors for reading text files.
var (
	// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
	ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

	// ErrNotUTF8 indicates that a file is not valid UTF-8 text.
	ErrNotUTF8 = errors.New("file is not valid UTF-8")
)

// ReadFileWithLimit reads a file up to MaxFileSize.
// It returns ErrFileTooLarge if the file is larger than the limit.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	return readLimited(f)
}

// ReadText reads a UTF-8 text file up to MaxFileSize.
// A leading byte order mark is dropped.
func ReadText(path string) (string, error) {
	data, err := ReadFileWithLimit(path)
	if err != nil {
		return "", err
	}
	return decodeText(data)
}

// ReadTextFrom reads UTF-8 text from r up to MaxFileSize.
func ReadTextFrom(r io.Reader) (string, error) {
	data, err := readLimited(r)
	if err != nil {
		return "", err
	}
	return decodeText(data)
}

func readLimited(r io.Reader) ([]byte, error) {
	// Fail fast if the size is already known to be too large
	if f, ok := r.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode().IsRegular() && info.Size() > MaxFileSize {
			return nil, ErrFileTooLarge
		}
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

func decodeText(data []byte) (string, error) {
	const bom = "\xef\xbb\xbf"
	if len(data) >= len(bom) && string(data[:len(bom)]) == bom {
		data = data[len(bom):]
	}
	if !utf8.Valid(data) {
		return "", ErrNotUTF8
	}
	return string(data), nil
}
