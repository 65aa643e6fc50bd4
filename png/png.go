// Package png renders an EPC payload as a QR code image. It sits behind
// the scanner's Encoder seam; the pipeline itself never depends on it.
package png

import "github.com/skip2/go-qrcode"

// Qr encodes content into a 300x300 PNG with medium error recovery.
func Qr(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, 300)
}
