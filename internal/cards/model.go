package cards

import "image"

// Entry is one manifest row: an image file name and the texts printed
// with it.
type Entry struct {
	Image  string   `json:"image"`
	Clue   string   `json:"clue"`
	Answer string   `json:"answer"`
	Tags   []string `json:"tags,omitempty"`
	QR     string   `json:"qr,omitempty"`
}

// Record is one physical card ready for placement. Image already has the
// size of the card's image rectangle.
type Record struct {
	ID     string      `json:"id"`
	Image  image.Image `json:"-"`
	Clue   string      `json:"clue"`
	Answer string      `json:"answer"`
	Tags   []string    `json:"tags,omitempty"`
}
