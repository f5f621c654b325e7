package servicerequest

import (
	"strings"
)

const MaxLocationLength = 300

// Location is a free-form address or landmark supplied by the customer.
type Location struct {
	value string
}

func NewLocation(s string) (Location, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Location{}, ErrEmptyLocation
	}
	if len(t) > MaxLocationLength {
		return Location{}, ErrLocationTooLong
	}
	return Location{value: t}, nil
}

func (l Location) String() string { return l.value }

// Price is a positive amount of credits.
type Price struct {
	value int64
}

func NewPrice(v int64) (Price, error) {
	if v <= 0 {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: v}, nil
}

func (p Price) Value() int64 { return p.value }
