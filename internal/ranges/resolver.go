// Package ranges resolves the tightest pH and EC intervals compatible with
// every profile in a selection. The result feeds the stored multiplant
// profile that readings are compared against.
package ranges

import (
	"errors"

	"hydromon/internal/model"
)

// ErrTooFewProfiles is returned for selections of fewer than two profiles;
// the feature only exists to compare several plants.
var ErrTooFewProfiles = errors.New("at least two plant profiles are required")

type Result struct {
	Compatible bool
	PHMin      float64
	PHMax      float64
	ECMin      float64
	ECMax      float64
}

// Resolve intersects the pH and EC tolerance intervals of the selection.
// The intersection is non-empty exactly when max(min) <= min(max) on both
// axes; callers must not persist anything when Compatible is false.
func Resolve(profiles []model.PlantProfile) (Result, error) {
	if len(profiles) < 2 {
		return Result{}, ErrTooFewProfiles
	}

	r := Result{
		PHMin: profiles[0].PHMin,
		PHMax: profiles[0].PHMax,
		ECMin: profiles[0].ECMin,
		ECMax: profiles[0].ECMax,
	}
	for _, p := range profiles[1:] {
		if p.PHMin > r.PHMin {
			r.PHMin = p.PHMin
		}
		if p.PHMax < r.PHMax {
			r.PHMax = p.PHMax
		}
		if p.ECMin > r.ECMin {
			r.ECMin = p.ECMin
		}
		if p.ECMax < r.ECMax {
			r.ECMax = p.ECMax
		}
	}

	r.Compatible = r.PHMax >= r.PHMin && r.ECMax >= r.ECMin
	return r, nil
}
