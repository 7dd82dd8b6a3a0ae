package service

import (
	"github.com/sebastien-blain/SOEN390-team-9/internal/models"
)

// goodTypes is the closed set of recognized variants, owned here rather
// than read from mutable configuration.
var goodTypes = map[models.GoodType]struct{}{
	models.TypeRaw:          {},
	models.TypeSemiFinished: {},
	models.TypeFinished:     {},
}

// ValidateGood reports whether a creation candidate is structurally
// sound. The check is purely local: it never touches the repository,
// and component references are only range-checked here (existence is
// the resolver's job). All component entries are scanned even after a
// failure is found.
func ValidateGood(good *models.Good) bool {
	if good == nil {
		return false
	}

	valid := true

	if good.Name == "" {
		valid = false
	}
	if _, ok := goodTypes[good.Type]; !ok {
		valid = false
	}
	if good.Cost <= 0 || good.ProcessTime <= 0 {
		valid = false
	}

	switch good.Type {
	case models.TypeRaw:
		if good.Vendor == "" {
			valid = false
		}
	case models.TypeFinished:
		if good.Price <= 0 {
			valid = false
		}
	}

	for _, ref := range good.Components {
		if ref.ID <= 0 || ref.Quantity <= 0 {
			valid = false
		}
	}

	return valid
}
