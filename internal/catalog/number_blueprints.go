package catalog

// NumberRules holds the sampling range/shape parameters for one blueprint.
// Only the fields relevant to the blueprint's number type are set.
type NumberRules struct {
	Min         int     `json:"min,omitempty"`
	Max         int     `json:"max,omitempty"`
	MinHour     int     `json:"min_hour,omitempty"`
	MaxHour     int     `json:"max_hour,omitempty"`
	MinMinute   int     `json:"min_minute,omitempty"`
	MaxMinute   int     `json:"max_minute,omitempty"`
	Prefix      string  `json:"prefix,omitempty"`
	TotalDigits int     `json:"total_digits,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	Country     string  `json:"country,omitempty"`
	MinAmount   float64 `json:"min_amount,omitempty"`
	MaxAmount   float64 `json:"max_amount,omitempty"`
	Decimals    int     `json:"decimals,omitempty"`
}

// NumberBlueprint is an immutable sampling configuration for one number type.
// Several blueprints may exist per type; one is chosen per exercise.
type NumberBlueprint struct {
	ID         string      `json:"id"`
	NumberType NumberType  `json:"number_type"`
	Difficulty string      `json:"difficulty"`
	Rules      NumberRules `json:"rules"`
}

// AllNumberBlueprints returns the full static blueprint catalog.
func AllNumberBlueprints() []NumberBlueprint {
	return []NumberBlueprint{
		{
			ID:         "year_1900_1999",
			NumberType: TypeYear,
			Difficulty: "medium",
			Rules:      NumberRules{Min: 1900, Max: 1999},
		},
		{
			ID:         "phone_fr_mobile",
			NumberType: TypePhone,
			Difficulty: "hard",
			Rules:      NumberRules{Country: "FR", Prefix: "06", TotalDigits: 10},
		},
		{
			ID:         "price_basic_euro",
			NumberType: TypePrice,
			Difficulty: "easy",
			Rules:      NumberRules{Currency: "EUR", MinAmount: 5.00, MaxAmount: 5000.00, Decimals: 2},
		},
		{
			ID:         "time_24h_basic",
			NumberType: TypeTime,
			Difficulty: "medium",
			Rules:      NumberRules{MinHour: 6, MaxHour: 22, MinMinute: 0, MaxMinute: 59},
		},
		{
			ID:         "address_street_number",
			NumberType: TypeAddress,
			Difficulty: "easy",
			Rules:      NumberRules{Min: 1, Max: 999},
		},
		{
			ID:         "statistics_basic_count",
			NumberType: TypeStatistics,
			Difficulty: "medium",
			Rules:      NumberRules{Min: 1, Max: 1000},
		},
		{
			ID:         "medical_dosage_basic",
			NumberType: TypeMedical,
			Difficulty: "medium",
			Rules:      NumberRules{Min: 1, Max: 1000},
		},
		{
			ID:         "banking_reference_basic",
			NumberType: TypeBanking,
			Difficulty: "medium",
			Rules:      NumberRules{Min: 100, Max: 9999},
		},
		{
			ID:         "weather_measurement_basic",
			NumberType: TypeWeather,
			Difficulty: "easy",
			Rules:      NumberRules{Min: 0, Max: 50},
		},
		{
			ID:         "transport_line_basic",
			NumberType: TypeTransport,
			Difficulty: "easy",
			Rules:      NumberRules{Min: 1, Max: 999},
		},
		{
			ID:         "shopping_quantity_basic",
			NumberType: TypeQuantity,
			Difficulty: "easy",
			Rules:      NumberRules{Min: 1, Max: 100},
		},
	}
}

// NumberBlueprintsByType filters the catalog down to one number type.
func NumberBlueprintsByType(numberType NumberType) []NumberBlueprint {
	var out []NumberBlueprint
	for _, bp := range AllNumberBlueprints() {
		if bp.NumberType == numberType {
			out = append(out, bp)
		}
	}
	return out
}
