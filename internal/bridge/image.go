package bridge

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// NormalizeImage turns a caller-supplied image reference into a form the
// backend accepts. Local file paths become data URIs with a MIME type guessed
// from the extension; anything else (data URIs, URLs, raw base64 references,
// paths that do not exist) passes through unchanged.
func NormalizeImage(input string) string {
	if strings.HasPrefix(input, "data:") {
		return input
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return input
	}
	mimeType := mime.TypeByExtension(filepath.Ext(input))
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// NormalizeImageBytes wraps a raw image payload as a PNG data URI. No content
// sniffing is performed.
func NormalizeImageBytes(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}
