package parser

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/nguyentantai21042004/caption-digest/internal/model"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ReadFile reads a subtitle file fully and decodes it to a string.
// UTF-8 (with or without BOM) and BOM-marked UTF-16 are accepted.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", model.ErrInput, path, err)
	}

	text, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("%w: decode %s: %w", model.ErrInput, path, err)
	}
	return text, nil
}

// Decode converts raw file bytes to text.
func Decode(data []byte) (string, error) {
	if bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE) {
		dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
		out, _, err := transform.Bytes(dec, data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	data = bytes.TrimPrefix(data, bomUTF8)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("content is not valid UTF-8 text")
	}
	// NUL is valid UTF-8 but never appears in text; BOM-less UTF-16 is full of it.
	if bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("content contains NUL bytes, not text")
	}
	return string(data), nil
}
