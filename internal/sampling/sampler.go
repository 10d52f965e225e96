// Package sampling draws concrete raw values (digit strings, "HH:MM" times,
// "<euros>.<cents>" prices) from the blueprint catalog. All randomness comes
// from an explicitly supplied *rand.Rand so that generation runs are
// reproducible given a seed.
package sampling

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"numbers-dictation-platform/backend/internal/catalog"
)

// GenerateNumber produces one raw value for the given blueprint.
// Deterministic given the blueprint and the state of rng.
func GenerateNumber(bp catalog.NumberBlueprint, rng *rand.Rand) (string, error) {
	if rng == nil {
		return "", fmt.Errorf("rng must not be nil")
	}

	switch bp.NumberType {
	case catalog.TypeYear:
		return fmt.Sprintf("%d", randBetween(rng, bp.Rules.Min, bp.Rules.Max)), nil

	case catalog.TypeTime:
		hour := randBetween(rng, bp.Rules.MinHour, bp.Rules.MaxHour)
		minute := randBetween(rng, bp.Rules.MinMinute, bp.Rules.MaxMinute)
		return fmt.Sprintf("%02d:%02d", hour, minute), nil

	case catalog.TypePhone:
		prefix := bp.Rules.Prefix
		remaining := bp.Rules.TotalDigits - len(prefix)
		if remaining < 0 {
			return "", fmt.Errorf("blueprint %s: prefix %q longer than total_digits %d", bp.ID, prefix, bp.Rules.TotalDigits)
		}
		var sb strings.Builder
		sb.WriteString(prefix)
		for i := 0; i < remaining; i++ {
			sb.WriteByte(byte('0' + rng.Intn(10)))
		}
		return sb.String(), nil

	case catalog.TypePrice:
		decimals := bp.Rules.Decimals
		factor := math.Pow10(decimals)
		minCents := int(bp.Rules.MinAmount * factor)
		maxCents := int(bp.Rules.MaxAmount * factor)
		value := randBetween(rng, minCents, maxCents)
		return fmt.Sprintf("%.*f", decimals, float64(value)/factor), nil

	case catalog.TypeAddress,
		catalog.TypeStatistics,
		catalog.TypeMedical,
		catalog.TypeBanking,
		catalog.TypeWeather,
		catalog.TypeTransport,
		catalog.TypeQuantity:
		return fmt.Sprintf("%d", randBetween(rng, bp.Rules.Min, bp.Rules.Max)), nil
	}

	return "", fmt.Errorf("unsupported number type: %s", bp.NumberType)
}

// SampleDigitsForType picks a blueprint of the given type uniformly and
// generates a raw value from its rules.
func SampleDigitsForType(numberType catalog.NumberType, rng *rand.Rand) (string, error) {
	if rng == nil {
		return "", fmt.Errorf("rng must not be nil")
	}

	blueprints := catalog.NumberBlueprintsByType(numberType)
	if len(blueprints) == 0 {
		return "", fmt.Errorf("no number blueprints registered for type %s", numberType)
	}

	bp := blueprints[rng.Intn(len(blueprints))]
	return GenerateNumber(bp, rng)
}

// randBetween returns a uniform integer in [min, max], inclusive on both ends.
func randBetween(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
