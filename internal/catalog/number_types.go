package catalog

import "fmt"

// NumberType is the closed set of numeric content categories the platform
// can generate dictation exercises for.
type NumberType string

const (
	TypeYear       NumberType = "YEAR"
	TypePhone      NumberType = "PHONE"
	TypePrice      NumberType = "PRICE"
	TypeTime       NumberType = "TIME"
	TypeAddress    NumberType = "ADDRESS"
	TypeStatistics NumberType = "STATISTICS"
	TypeMedical    NumberType = "MEDICAL"
	TypeBanking    NumberType = "BANKING"
	TypeWeather    NumberType = "WEATHER"
	TypeTransport  NumberType = "TRANSPORT"
	TypeQuantity   NumberType = "QUANTITY"
)

// AllNumberTypes returns every supported number type in a stable order.
func AllNumberTypes() []NumberType {
	return []NumberType{
		TypeYear,
		TypePhone,
		TypePrice,
		TypeTime,
		TypeAddress,
		TypeStatistics,
		TypeMedical,
		TypeBanking,
		TypeWeather,
		TypeTransport,
		TypeQuantity,
	}
}

// ParseNumberType validates a raw string against the closed set.
func ParseNumberType(raw string) (NumberType, error) {
	for _, t := range AllNumberTypes() {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid number type: %q", raw)
}

// ParseNumberTypes parses a list of raw type strings. At least one type is
// required; any unknown value fails the whole parse.
func ParseNumberTypes(raws []string) ([]NumberType, error) {
	if len(raws) == 0 {
		return nil, fmt.Errorf("at least one number type is required")
	}
	types := make([]NumberType, 0, len(raws))
	for _, raw := range raws {
		t, err := ParseNumberType(raw)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
