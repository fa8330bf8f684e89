package hotel

import "errors"

var ErrInvalidHotel = errors.New("invalid hotel")

type Hotel string

const (
	AfricanVillage Hotel = "africanVillage"
	Bishoftu       Hotel = "bishoftu"
	Entoto         Hotel = "entoto"
	LakeTana       Hotel = "laketana"
	AwashFall      Hotel = "awashfall"
)

func All() []Hotel {
	return []Hotel{AfricanVillage, Bishoftu, Entoto, LakeTana, AwashFall}
}

func (h Hotel) String() string {
	return string(h)
}

func (h Hotel) IsValid() bool {
	switch h {
	case AfricanVillage, Bishoftu, Entoto, LakeTana, AwashFall:
		return true
	default:
		return false
	}
}

func NewHotel(s string) (Hotel, error) {
	h := Hotel(s)
	if !h.IsValid() {
		return "", ErrInvalidHotel
	}
	return h, nil
}
