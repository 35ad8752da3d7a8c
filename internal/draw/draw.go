package draw

const (
	// MaxNumbers is the number of main numbers in a draw.
	MaxNumbers = 5
	// MaxStars is the number of stars (bonus values) in a draw.
	MaxStars = 2

	// UnknownDate is used when a draw block carries no heading.
	UnknownDate = "Desconocida"
)

// Draw represents one EuroMillones drawing
type Draw struct {
	Date        string   `json:"date"`
	Numbers     []string `json:"numbers"`
	Stars       []string `json:"stars"`
	MillionCode string   `json:"million_code,omitempty"`
}

// New creates a Draw, keeping at most MaxNumbers numbers and MaxStars stars
// in the order given. The slices are copied.
func New(date string, numbers, stars []string, millionCode string) *Draw {
	if len(numbers) > MaxNumbers {
		numbers = numbers[:MaxNumbers]
	}
	if len(stars) > MaxStars {
		stars = stars[:MaxStars]
	}

	return &Draw{
		Date:        date,
		Numbers:     append([]string(nil), numbers...),
		Stars:       append([]string(nil), stars...),
		MillionCode: millionCode,
	}
}

// Number returns the main number at position i, or false if the draw has no
// value in that slot.
func (d *Draw) Number(i int) (string, bool) {
	if i < 0 || i >= len(d.Numbers) {
		return "", false
	}
	return d.Numbers[i], true
}

// Star returns the star at position i, or false if the slot is empty.
func (d *Draw) Star(i int) (string, bool) {
	if i < 0 || i >= len(d.Stars) {
		return "", false
	}
	return d.Stars[i], true
}
