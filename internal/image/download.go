package imagepkg

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/youruser/cluedeck/internal/util"
)

// DownloadImage downloads an image from URL and returns it decoded.
func DownloadImage(url string) (image.Image, error) {
	body, err := util.GetBytes(url)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body), imaging.AutoOrientation(true))
}
