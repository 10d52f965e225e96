package catalog

// SentenceBlueprint is the situational metadata handed to the sentence author.
// It carries no behavior of its own; one is picked uniformly per exercise.
type SentenceBlueprint struct {
	ID          string     `json:"id"`
	NumberType  NumberType `json:"number_type"`
	Context     string     `json:"context"`
	Description string     `json:"description"`
	Tone        string     `json:"tone"`
}

// AllSentenceBlueprints returns the full static sentence blueprint catalog.
func AllSentenceBlueprints() []SentenceBlueprint {
	return []SentenceBlueprint{
		// PHONE
		{ID: "casual_phone_call", NumberType: TypePhone, Context: "casual_phone_call", Description: "Sharing a phone number with a friend.", Tone: "casual"},
		{ID: "professional_contact", NumberType: TypePhone, Context: "professional_contact", Description: "Giving a phone number in a business or work setting.", Tone: "professional"},
		{ID: "missed_call_message", NumberType: TypePhone, Context: "missed_call_message", Description: "Leaving a phone number on voicemail.", Tone: "neutral"},
		{ID: "wrong_number", NumberType: TypePhone, Context: "wrong_number", Description: "Realizing or explaining that the number dialed is incorrect.", Tone: "casual"},
		{ID: "customer_support", NumberType: TypePhone, Context: "customer_support", Description: "Calling customer service and stating a contact number.", Tone: "professional"},
		{ID: "appointment_confirmation", NumberType: TypePhone, Context: "appointment_confirmation", Description: "Confirming a phone number for an appointment or delivery.", Tone: "neutral"},
		{ID: "delivery_driver_update", NumberType: TypePhone, Context: "delivery_driver_update", Description: "Giving a phone number to a delivery driver for updates.", Tone: "casual"},
		{ID: "emergency_contact_exchange", NumberType: TypePhone, Context: "emergency_contact_exchange", Description: "Sharing a phone number to be used as an emergency contact.", Tone: "serious"},
		{ID: "family_check_in_call", NumberType: TypePhone, Context: "family_check_in_call", Description: "Exchanging a phone number while checking in with family.", Tone: "warm"},

		// YEAR
		{ID: "biography_year", NumberType: TypeYear, Context: "biography_year", Description: "Mentioning a birth year or important life event.", Tone: "neutral"},
		{ID: "historical_reference", NumberType: TypeYear, Context: "historical_reference", Description: "Referring to a major historical event.", Tone: "neutral"},
		{ID: "movie_release_year", NumberType: TypeYear, Context: "movie_release_year", Description: "Talking about the release year of a movie or album.", Tone: "casual"},
		{ID: "company_founding_year", NumberType: TypeYear, Context: "company_founding_year", Description: "Mentioning the year a company or brand was founded.", Tone: "professional"},
		{ID: "school_graduation_year", NumberType: TypeYear, Context: "school_graduation_year", Description: "Stating a graduation or academic year.", Tone: "neutral"},
		{ID: "sports_event_year", NumberType: TypeYear, Context: "sports_event_year", Description: "Recalling the year of a memorable sports event.", Tone: "casual"},
		{ID: "wedding_anniversary_year", NumberType: TypeYear, Context: "wedding_anniversary_year", Description: "Talking about the year of a wedding or relationship anniversary.", Tone: "warm"},
		{ID: "election_year", NumberType: TypeYear, Context: "election_year", Description: "Referring to the year of an important election.", Tone: "neutral"},

		// PRICE
		{ID: "shop_price", NumberType: TypePrice, Context: "shop_price", Description: "Asking for or stating the price of an item in a shop.", Tone: "casual"},
		{ID: "service_fee", NumberType: TypePrice, Context: "service_fee", Description: "Discussing the cost of a service or professional fee.", Tone: "professional"},
		{ID: "discount_price", NumberType: TypePrice, Context: "discount_price", Description: "Mentioning a discounted or promotional price.", Tone: "casual"},
		{ID: "subscription_price", NumberType: TypePrice, Context: "subscription_price", Description: "Talking about a monthly or yearly subscription cost.", Tone: "neutral"},
		{ID: "restaurant_bill", NumberType: TypePrice, Context: "restaurant_bill", Description: "Stating the total amount to pay at a restaurant.", Tone: "casual"},
		{ID: "online_order_total", NumberType: TypePrice, Context: "online_order_total", Description: "Confirming the total price of an online order.", Tone: "neutral"},
		{ID: "supermarket_total", NumberType: TypePrice, Context: "supermarket_total", Description: "Stating the total amount to pay at a supermarket checkout.", Tone: "casual"},
		{ID: "rent_payment", NumberType: TypePrice, Context: "rent_payment", Description: "Talking about the monthly amount of rent to pay.", Tone: "neutral"},
		{ID: "travel_ticket_price", NumberType: TypePrice, Context: "travel_ticket_price", Description: "Discussing the price of a train, bus, or plane ticket.", Tone: "casual"},
		{ID: "hotel_night_rate", NumberType: TypePrice, Context: "hotel_night_rate", Description: "Mentioning the price per night for a hotel room.", Tone: "professional"},

		// TIME
		{ID: "appointment_time", NumberType: TypeTime, Context: "appointment_time", Description: "Giving the time of a medical or personal appointment.", Tone: "neutral"},
		{ID: "train_departure_time", NumberType: TypeTime, Context: "train_departure_time", Description: "Announcing or checking the departure time of a train.", Tone: "neutral"},
		{ID: "meeting_time", NumberType: TypeTime, Context: "meeting_time", Description: "Confirming the time of a work or school meeting.", Tone: "professional"},

		// ADDRESS
		{ID: "home_address", NumberType: TypeAddress, Context: "home_address", Description: "Mentioning the street number of a home address.", Tone: "neutral"},
		{ID: "delivery_address", NumberType: TypeAddress, Context: "delivery_address", Description: "Giving the street number for a delivery address.", Tone: "casual"},
		{ID: "hotel_address", NumberType: TypeAddress, Context: "hotel_address", Description: "Checking or confirming the street number of a hotel.", Tone: "neutral"},

		// STATISTICS
		{ID: "population_statistics", NumberType: TypeStatistics, Context: "population_statistics", Description: "Talking about the population of a city or country.", Tone: "neutral"},
		{ID: "survey_percentage", NumberType: TypeStatistics, Context: "survey_percentage", Description: "Mentioning a percentage from a survey or poll.", Tone: "neutral"},
		{ID: "study_sample_size", NumberType: TypeStatistics, Context: "study_sample_size", Description: "Referring to the number of people in a study or group.", Tone: "professional"},

		// MEDICAL
		{ID: "medicine_dosage", NumberType: TypeMedical, Context: "medicine_dosage", Description: "Giving the dosage of a medicine (mg, ml, etc.).", Tone: "neutral"},
		{ID: "pharmacy_prescription", NumberType: TypeMedical, Context: "pharmacy_prescription", Description: "Talking to a pharmacist about how many pills or boxes to take.", Tone: "neutral"},
		{ID: "hospital_room_number", NumberType: TypeMedical, Context: "hospital_room_number", Description: "Mentioning a hospital room or ward number.", Tone: "neutral"},

		// BANKING
		{ID: "bank_account_reference", NumberType: TypeBanking, Context: "bank_account_reference", Description: "Giving a shortened bank account reference or number.", Tone: "professional"},
		{ID: "tax_reference_number", NumberType: TypeBanking, Context: "tax_reference_number", Description: "Mentioning a tax or social security reference number.", Tone: "professional"},
		{ID: "insurance_policy_number", NumberType: TypeBanking, Context: "insurance_policy_number", Description: "Stating an insurance contract or policy number.", Tone: "professional"},

		// WEATHER
		{ID: "temperature_forecast", NumberType: TypeWeather, Context: "temperature_forecast", Description: "Talking about the forecast temperature in degrees.", Tone: "casual"},
		{ID: "rainfall_measurement", NumberType: TypeWeather, Context: "rainfall_measurement", Description: "Mentioning the amount of rain expected or recorded.", Tone: "neutral"},
		{ID: "wind_speed_report", NumberType: TypeWeather, Context: "wind_speed_report", Description: "Talking about wind speed in a weather report.", Tone: "neutral"},

		// TRANSPORT
		{ID: "train_platform", NumberType: TypeTransport, Context: "train_platform", Description: "Announcing the platform number for a train.", Tone: "neutral"},
		{ID: "flight_number", NumberType: TypeTransport, Context: "flight_number", Description: "Mentioning a flight number at the airport.", Tone: "neutral"},
		{ID: "bus_line_number", NumberType: TypeTransport, Context: "bus_line_number", Description: "Talking about a bus or tram line number.", Tone: "casual"},

		// QUANTITY
		{ID: "grocery_quantity", NumberType: TypeQuantity, Context: "grocery_quantity", Description: "Saying how many items or packets to buy in a supermarket.", Tone: "casual"},
		{ID: "market_weight", NumberType: TypeQuantity, Context: "market_weight", Description: "Talking about kilos or grams of fruit and vegetables at a market.", Tone: "casual"},
		{ID: "pack_count", NumberType: TypeQuantity, Context: "pack_count", Description: "Mentioning how many packs or bottles are needed.", Tone: "neutral"},
	}
}

// SentenceBlueprintsByType filters the catalog down to one number type.
func SentenceBlueprintsByType(numberType NumberType) []SentenceBlueprint {
	var out []SentenceBlueprint
	for _, bp := range AllSentenceBlueprints() {
		if bp.NumberType == numberType {
			out = append(out, bp)
		}
	}
	return out
}
