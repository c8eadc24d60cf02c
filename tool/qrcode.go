package tool

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const DefaultQRSize = 256

// EncodeQRCode renders content as a PNG QR code.
func EncodeQRCode(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr content is empty")
	}
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
