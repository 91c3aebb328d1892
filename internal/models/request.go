package models

import (
	"strconv"
	"strings"
	"time"
)

// SearchQuery is the raw query-parameter bag as it arrives on the wire.
// Every field is a string; ParseSearchQuery turns it into a SearchData.
type SearchQuery struct {
	Type         string `query:"type"`
	From         string `query:"from"`
	To           string `query:"to"`
	CheckIn      string `query:"checkIn"`
	CheckOut     string `query:"checkOut"`
	Adults       string `query:"adults"`
	Children     string `query:"children"`
	CheckInFlex  string `query:"checkInFlex"`
	CheckOutFlex string `query:"checkOutFlex"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrInvalidSearchType  ValidationError = "invalid or missing search type"
	ErrMissingOrigin      ValidationError = "invalid or missing origin location"
	ErrMissingDestination ValidationError = "invalid or missing destination location for flights"
	ErrMissingCheckIn     ValidationError = "missing check-in date"
	ErrInvalidCheckIn     ValidationError = "invalid check-in date format"
	ErrMissingCheckOut    ValidationError = "missing check-out date"
	ErrInvalidCheckOut    ValidationError = "invalid check-out date format"
	ErrCheckOutNotAfter   ValidationError = "check-out date must be after check-in date"
	ErrMissingAdults      ValidationError = "missing number of adults"
	ErrInvalidAdults      ValidationError = "invalid number of adults (must be 1-9)"
	ErrInvalidChildren    ValidationError = "invalid number of children (must be 0-9)"
)

// ValidationErrors accumulates every rule that failed for one request.
// The request is rejected whole: no partial SearchData ever escapes.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = string(v)
	}
	return strings.Join(msgs, "; ")
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ParseSearchQuery validates a raw query bag and returns a normalized
// SearchData. All rules are checked independently and accumulated, so a
// caller inspecting the error sees every problem at once, not just the
// first. On any failure the returned SearchData is nil.
func ParseSearchQuery(q SearchQuery) (*SearchData, error) {
	var errs ValidationErrors

	if q.Type != SearchTypeFlights && q.Type != SearchTypeHotels {
		errs = append(errs, ErrInvalidSearchType)
	}

	if q.From == "" {
		errs = append(errs, ErrMissingOrigin)
	}

	if q.Type == SearchTypeFlights && q.To == "" {
		errs = append(errs, ErrMissingDestination)
	}

	var checkIn, checkOut time.Time
	checkInOK := false

	if q.CheckIn == "" {
		errs = append(errs, ErrMissingCheckIn)
	} else if t, err := parseDate(q.CheckIn); err != nil {
		errs = append(errs, ErrInvalidCheckIn)
	} else {
		checkIn = t
		checkInOK = true
	}

	if q.CheckOut == "" {
		errs = append(errs, ErrMissingCheckOut)
	} else if t, err := parseDate(q.CheckOut); err != nil {
		errs = append(errs, ErrInvalidCheckOut)
	} else {
		checkOut = t
		if checkInOK && !checkOut.After(checkIn) {
			errs = append(errs, ErrCheckOutNotAfter)
		}
	}

	adults := 0
	if q.Adults == "" {
		errs = append(errs, ErrMissingAdults)
	} else if n, err := strconv.Atoi(q.Adults); err != nil || n < 1 || n > 9 {
		errs = append(errs, ErrInvalidAdults)
	} else {
		adults = n
	}

	children := 0
	if q.Children != "" {
		if n, err := strconv.Atoi(q.Children); err != nil || n < 0 || n > 9 {
			errs = append(errs, ErrInvalidChildren)
		} else {
			children = n
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	checkInFlex := q.CheckInFlex
	if checkInFlex == "" {
		checkInFlex = "exact"
	}
	checkOutFlex := q.CheckOutFlex
	if checkOutFlex == "" {
		checkOutFlex = "exact"
	}

	return &SearchData{
		SearchType:          q.Type,
		Location:            q.From,
		Destination:         q.To,
		CheckIn:             checkIn,
		CheckOut:            checkOut,
		CheckInFlexibility:  checkInFlex,
		CheckOutFlexibility: checkOutFlex,
		Passengers: Passengers{
			Adults:   adults,
			Children: children,
			Total:    adults + children,
		},
	}, nil
}
