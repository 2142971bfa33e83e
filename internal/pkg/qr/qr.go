package qr

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

// DataURL renders content as a PNG QR code and returns it as a base64 data
// URL suitable for inlining in API responses and email bodies.
func DataURL(content string) (string, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(defaultSize)); err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// PNG renders content as raw PNG bytes, used for email attachments.
func PNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
