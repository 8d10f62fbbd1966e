package services

import (
	"encoding/base64"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/skip2/go-qrcode"
)

const artifactSize = 256

// RenderPairingArtifact converts a raw pairing code into an image data URL
// that pollers can render directly, without knowing the encoding.
func RenderPairingArtifact(code string) (string, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, artifactSize)
	if err != nil {
		return "", fmt.Errorf("qr encoding failed: %w", err)
	}

	mime := mimetype.Detect(png)
	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(png), nil
}
