// Package mugshot decodes the mugshot attached to an arrest report, normalizes
// it to PNG for Discord, and optionally captions it with a vision model.
package mugshot

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// MaxSize is the largest decoded mugshot accepted, in bytes.
const MaxSize = 10 << 20

var (
	// ErrInvalidDataURL is returned for values that are not base64 image data.
	ErrInvalidDataURL = errors.New("mugshot must be a base64 encoded image")
	// ErrUnsupportedType is returned when the declared or detected type is not
	// an image or PDF.
	ErrUnsupportedType = errors.New("mugshot must be an image or PDF")
)

// Image is a decoded mugshot.
type Image struct {
	ContentType string
	Data        []byte
}

// Filename returns an attachment name matching the content type.
func (i Image) Filename() string {
	switch strings.ToLower(i.ContentType) {
	case "image/png":
		return "mugshot.png"
	case "image/jpeg", "image/jpg":
		return "mugshot.jpg"
	case "image/gif":
		return "mugshot.gif"
	case "image/heic", "image/heif":
		return "mugshot.heic"
	case "application/pdf":
		return "mugshot.pdf"
	}
	return "mugshot"
}

// DataURL encodes the image as a "data:<type>;base64,<data>" URL.
func (i Image) DataURL() string {
	return "data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// ParseDataURL decodes a browser style data URL. Raw base64 without the
// "data:" prefix is accepted and its content type is sniffed.
func ParseDataURL(s string) (*Image, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidDataURL
	}

	contentType := ""
	payload := s
	if strings.HasPrefix(s, "data:") {
		meta, data, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
		if !ok || !strings.HasSuffix(meta, ";base64") {
			return nil, ErrInvalidDataURL
		}
		contentType = strings.TrimSuffix(meta, ";base64")
		payload = data
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > MaxSize+3 {
		return nil, fmt.Errorf("mugshot exceeds %d bytes", MaxSize)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	if len(data) == 0 {
		return nil, ErrInvalidDataURL
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	sniffed := sniff(data)
	if contentType != "" && !supportedType(contentType) {
		return nil, fmt.Errorf("%w: declared %s", ErrUnsupportedType, contentType)
	}
	if !supportedType(sniffed) {
		return nil, fmt.Errorf("%w: detected %s", ErrUnsupportedType, sniffed)
	}
	if contentType == "" {
		contentType = sniffed
	}
	return &Image{ContentType: contentType, Data: data}, nil
}

// sniff detects the content type of data. HEIC, which net/http does not
// recognise, is detected from its ftyp brand.
func sniff(data []byte) string {
	if isHEICFormat(data) {
		return "image/heic"
	}
	ct, _, _ := strings.Cut(http.DetectContentType(data), ";")
	return ct
}

func supportedType(ct string) bool {
	ct, _, _ = strings.Cut(ct, ";")
	return strings.HasPrefix(ct, "image/") || ct == "application/pdf"
}
