package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidImagePayload = errors.New("invalid base64 image payload")

// DecodeBase64Image decodes a data-URL image payload
// ("data:image/png;base64,...") and reports the decoded bytes together with
// the mime type and a file extension. A bare base64 string without the data
// prefix is treated as image/jpeg.
func DecodeBase64Image(payload string) ([]byte, string, string, error) {
	contentType := "image/jpeg"
	data := payload

	if strings.HasPrefix(payload, "data:") {
		parts := strings.SplitN(payload, ",", 2)
		if len(parts) != 2 {
			return nil, "", "", ErrInvalidImagePayload
		}
		meta := strings.TrimPrefix(parts[0], "data:")
		meta = strings.TrimSuffix(meta, ";base64")
		if meta != "" {
			contentType = meta
		}
		data = parts[1]
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", "", ErrInvalidImagePayload
	}

	ext := ".jpg"
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}

	return decoded, contentType, ext, nil
}
