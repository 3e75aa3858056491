package textsource

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"wordcounter/internal/analysis"
)

// ReadFile returns the UTF-8 text stored at path.
func ReadFile(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", analysis.Wrap(analysis.ErrFileNotFound, "read", "(empty path)", nil)
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", analysis.Wrap(analysis.ErrFileNotFound, "read", path, nil)
	case err != nil:
		return "", analysis.Wrap(analysis.ErrIO, "stat", path, err)
	case info.IsDir():
		return "", analysis.Wrap(analysis.ErrIO, "read", path, errors.New("is a directory"))
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", analysis.Wrap(analysis.ErrFileNotFound, "read", path, nil)
		}
		return "", analysis.Wrap(analysis.ErrIO, "open", path, err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return "", analysis.Wrap(analysis.ErrIO, "read", path, err)
	}
	return Decode(path, raw)
}

// Decode validates raw as UTF-8 and removes a leading byte-order mark. name is
// used in error messages only.
func Decode(name string, raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		offset := invalidOffset(raw)
		return "", analysis.Wrap(analysis.ErrDecode, "decode", name, &DecodeError{Offset: offset})
	}
	text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return "", analysis.Wrap(analysis.ErrDecode, "decode", name, err)
	}
	return string(text), nil
}

// DecodeError reports the byte offset of the first invalid UTF-8 sequence.
type DecodeError struct {
	Offset int
}

func (e *DecodeError) Error() string {
	return "invalid utf-8 at byte " + strconv.Itoa(e.Offset)
}

func invalidOffset(raw []byte) int {
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(raw)
}
