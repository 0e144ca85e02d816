package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// EncodePNG renders content as a QR PNG.
func EncodePNG(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR: %w", err)
	}
	return png, nil
}

// EncodeDataURI renders content as a base64 PNG data URI, the format
// the frontend embeds directly in <img> tags and printable badges.
func EncodeDataURI(content string) (string, error) {
	png, err := EncodePNG(content, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
