package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/cluedeck/internal/layout"
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}

// GenerateQRImage returns a QR code for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	b, err := GenerateQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}

// QRPlaceholder renders text as a QR code centred on a white image of the
// given size. It stands in for cards that have no picture.
func QRPlaceholder(text string, size layout.Size) (*image.NRGBA, error) {
	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	q, err := GenerateQRImage(text, side)
	if err != nil {
		return nil, err
	}
	bg := imaging.New(size.Width, size.Height, color.White)
	return imaging.PasteCenter(bg, q), nil
}
