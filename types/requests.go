package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AddStaffRequest is a validated add-staff submission. Build it with
// NewAddStaffRequest so every instance that reaches the store is known good.
type AddStaffRequest struct {
	Name      string
	Role      string
	Basic     float64
	Housing   float64
	Transport float64
	Feeding   float64
}

// NewAddStaffRequest validates raw form values into an AddStaffRequest.
// Name and role must be non-empty text; the four amounts must parse as
// non-negative numbers. Any violation returns ErrInvalidInput with the
// offending field named.
func NewAddStaffRequest(name, role, basic, housing, transport, feeding string) (AddStaffRequest, error) {
	req := AddStaffRequest{
		Name: strings.TrimSpace(name),
		Role: strings.TrimSpace(role),
	}
	if req.Name == "" {
		return AddStaffRequest{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Role == "" {
		return AddStaffRequest{}, fmt.Errorf("%w: role is required", ErrInvalidInput)
	}

	amounts := []struct {
		field string
		raw   string
		dst   *float64
	}{
		{"basic", basic, &req.Basic},
		{"housing", housing, &req.Housing},
		{"transport", transport, &req.Transport},
		{"feeding", feeding, &req.Feeding},
	}
	for _, a := range amounts {
		v, err := strconv.ParseFloat(strings.TrimSpace(a.raw), 64)
		if err != nil {
			return AddStaffRequest{}, fmt.Errorf("%w: %s must be a number", ErrInvalidInput, a.field)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return AddStaffRequest{}, fmt.Errorf("%w: %s must be a non-negative amount", ErrInvalidInput, a.field)
		}
		*a.dst = v
	}

	return req, nil
}
