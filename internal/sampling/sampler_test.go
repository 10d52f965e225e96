package sampling

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"numbers-dictation-platform/backend/internal/catalog"
)

func TestGenerateNumberShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	shapes := map[catalog.NumberType]*regexp.Regexp{
		catalog.TypeYear:     regexp.MustCompile(`^19\d{2}$`),
		catalog.TypePhone:    regexp.MustCompile(`^06\d{8}$`),
		catalog.TypeTime:     regexp.MustCompile(`^\d{2}:\d{2}$`),
		catalog.TypePrice:    regexp.MustCompile(`^\d+\.\d{2}$`),
		catalog.TypeAddress:  regexp.MustCompile(`^\d{1,3}$`),
		catalog.TypeBanking:  regexp.MustCompile(`^\d{3,4}$`),
		catalog.TypeWeather:  regexp.MustCompile(`^\d{1,2}$`),
		catalog.TypeQuantity: regexp.MustCompile(`^\d{1,3}$`),
	}

	for numberType, shape := range shapes {
		for i := 0; i < 50; i++ {
			value, err := SampleDigitsForType(numberType, rng)
			if err != nil {
				t.Fatalf("SampleDigitsForType(%s) error: %v", numberType, err)
			}
			if !shape.MatchString(value) {
				t.Fatalf("SampleDigitsForType(%s) = %q does not match %s", numberType, value, shape)
			}
		}
	}
}

func TestGenerateNumberDeterministic(t *testing.T) {
	bp := catalog.NumberBlueprintsByType(catalog.TypePhone)[0]

	first, err := GenerateNumber(bp, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("GenerateNumber error: %v", err)
	}
	second, err := GenerateNumber(bp, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("GenerateNumber error: %v", err)
	}
	if first != second {
		t.Fatalf("same seed produced %q and %q", first, second)
	}
}

func TestGenerateTimeWithinBlueprintRange(t *testing.T) {
	bp := catalog.NumberBlueprintsByType(catalog.TypeTime)[0]
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		value, err := GenerateNumber(bp, rng)
		if err != nil {
			t.Fatalf("GenerateNumber error: %v", err)
		}
		parts := strings.SplitN(value, ":", 2)
		hour, _ := strconv.Atoi(parts[0])
		minute, _ := strconv.Atoi(parts[1])
		if hour < bp.Rules.MinHour || hour > bp.Rules.MaxHour {
			t.Fatalf("hour %d outside [%d,%d]", hour, bp.Rules.MinHour, bp.Rules.MaxHour)
		}
		if minute < bp.Rules.MinMinute || minute > bp.Rules.MaxMinute {
			t.Fatalf("minute %d outside [%d,%d]", minute, bp.Rules.MinMinute, bp.Rules.MaxMinute)
		}
	}
}

func TestGenerateNumberNilRNG(t *testing.T) {
	bp := catalog.NumberBlueprintsByType(catalog.TypeYear)[0]
	if _, err := GenerateNumber(bp, nil); err == nil {
		t.Fatal("expected error with nil rng")
	}
}
