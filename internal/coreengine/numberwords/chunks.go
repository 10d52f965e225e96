package numberwords

import (
	"strconv"
	"strings"

	"numbers-dictation-platform/backend/internal/catalog"
)

// ToSpokenChunks converts a sampled digit string into its ordered spoken
// French fragments. The conversion is deterministic and reversible: each
// chunk must later reappear verbatim, exactly once, inside the carrier
// sentence. Malformed input degrades to the raw string as a single chunk
// rather than being silently reinterpreted.
func ToSpokenChunks(digits string, numberType catalog.NumberType) []string {
	switch numberType {
	case catalog.TypeYear:
		return yearChunks(digits)
	case catalog.TypeTime:
		return timeChunks(digits)
	case catalog.TypePhone:
		return phoneChunks(digits)
	case catalog.TypePrice:
		return priceChunks(digits)
	case catalog.TypeAddress,
		catalog.TypeStatistics,
		catalog.TypeMedical,
		catalog.TypeBanking,
		catalog.TypeWeather,
		catalog.TypeTransport,
		catalog.TypeQuantity:
		return integerChunks(digits)
	}
	return []string{digits}
}

// yearChunks reads 1900–1999 the pedagogical way: "mille neuf cent" plus the
// last two digits when nonzero (1998 -> "mille neuf cent", "quatre-vingt-dix-huit").
// Other years fall back to the generic converter.
func yearChunks(digits string) []string {
	if len(digits) == 4 {
		year, err := strconv.Atoi(digits)
		if err != nil {
			return []string{digits}
		}
		if year >= 1900 && year <= 1999 {
			chunks := []string{"mille neuf cent"}
			lastTwo := year % 100
			if lastTwo > 0 {
				words, _ := IntToFrench(lastTwo)
				chunks = append(chunks, words)
			}
			return chunks
		}
		words, err := IntToFrench(year)
		if err != nil {
			return []string{digits}
		}
		return []string{words}
	}
	return integerChunks(digits)
}

// timeChunks accepts "HH:MM" or a bare 4-digit "HHMM" and emits
// "<hour words> heures" plus the minutes when nonzero.
func timeChunks(digits string) []string {
	var hourStr, minuteStr string
	switch {
	case strings.Contains(digits, ":"):
		parts := strings.SplitN(digits, ":", 2)
		hourStr, minuteStr = parts[0], parts[1]
	case len(digits) == 4:
		hourStr, minuteStr = digits[:2], digits[2:]
	default:
		return integerChunks(digits)
	}

	hour, errH := strconv.Atoi(hourStr)
	if minuteStr == "" {
		minuteStr = "0"
	}
	minute, errM := strconv.Atoi(minuteStr)
	if errH != nil || errM != nil {
		return integerChunks(digits)
	}

	hourWords, err := IntToFrench(hour)
	if err != nil {
		return []string{digits}
	}
	chunks := []string{hourWords + " heures"}

	if minute > 0 {
		minuteWords, err := IntToFrench(minute)
		if err != nil {
			return chunks
		}
		chunks = append(chunks, minuteWords)
	}
	return chunks
}

// phoneChunks splits the digit string into consecutive 2-digit pairs, one
// chunk per pair. A pair with a leading zero is read digit-first:
// "06" -> "zéro six", "00" -> "zéro zéro".
func phoneChunks(digits string) []string {
	var chunks []string
	for i := 0; i+2 <= len(digits); i += 2 {
		pair := digits[i : i+2]
		value, err := strconv.Atoi(pair)
		if err != nil {
			continue
		}
		words, _ := IntToFrench(value)
		if pair[0] == '0' {
			chunks = append(chunks, "zéro "+words)
		} else {
			chunks = append(chunks, words)
		}
	}
	if chunks == nil {
		return []string{digits}
	}
	return chunks
}

// priceChunks reads "<euros>.<cents>" as "<euros words> euros" plus the
// cents when nonzero. A missing decimal part means whole euros.
func priceChunks(digits string) []string {
	integerPart := digits
	decimalPart := "00"
	if idx := strings.Index(digits, "."); idx >= 0 {
		integerPart = digits[:idx]
		decimalPart = digits[idx+1:]
	}

	euros, errE := strconv.Atoi(integerPart)
	cents, errC := strconv.Atoi(decimalPart)
	if errE != nil || errC != nil {
		return []string{digits}
	}

	euroWords, err := IntToFrench(euros)
	if err != nil {
		return []string{digits}
	}
	chunks := []string{euroWords + " euros"}

	if cents > 0 {
		centWords, err := IntToFrench(cents)
		if err != nil {
			return chunks
		}
		chunks = append(chunks, centWords)
	}
	return chunks
}

func integerChunks(digits string) []string {
	value, err := strconv.Atoi(digits)
	if err != nil {
		return []string{digits}
	}
	words, err := IntToFrench(value)
	if err != nil {
		return []string{digits}
	}
	return []string{words}
}
