package numberwords

import (
	"fmt"
	"strings"
)

// IntToFrench converts an integer in the range 0–9999 to its French text
// representation. This is the generic converter; pedagogical special cases
// (like years read as "mille neuf cent ...") are handled by the chunk
// converter, not here.
func IntToFrench(n int) (string, error) {
	if n < 0 || n > 9999 {
		return "", fmt.Errorf("value %d out of supported range 0-9999", n)
	}
	if n == 0 {
		return "zéro", nil
	}

	var parts []string

	if n >= 1000 {
		thousands := n / 1000
		if thousands == 1 {
			parts = append(parts, "mille")
		} else {
			th, _ := IntToFrench(thousands)
			parts = append(parts, th+" mille")
		}
		n = n % 1000
	}

	if n >= 100 {
		hundreds := n / 100
		remainder := n % 100
		if hundreds == 1 {
			parts = append(parts, "cent")
		} else {
			h, _ := IntToFrench(hundreds)
			// "cents" only when nothing follows: deux cents, but deux cent trois
			if remainder == 0 {
				parts = append(parts, h+" cents")
			} else {
				parts = append(parts, h+" cent")
			}
		}
		n = remainder
	}

	if n > 0 {
		parts = append(parts, convert0to99(n))
	}

	return strings.Join(parts, " "), nil
}

var frenchUnits = []string{
	"", "un", "deux", "trois", "quatre",
	"cinq", "six", "sept", "huit", "neuf",
}

var frenchTeens = []string{
	"dix", "onze", "douze", "treize", "quatorze",
	"quinze", "seize", "dix-sept", "dix-huit", "dix-neuf",
}

var frenchTens = []string{
	"", "dix", "vingt", "trente", "quarante",
	"cinquante", "soixante",
}

// convert0to99 handles the irregular French two-digit range, including the
// soixante-dix, quatre-vingts and quatre-vingt-dix families.
func convert0to99(n int) string {
	if n < 10 {
		return frenchUnits[n]
	}
	if n < 20 {
		return frenchTeens[n-10]
	}

	ten := n / 10
	unit := n % 10

	switch ten {
	case 7:
		// 70–79: soixante + 10–19, with "et" only for 71
		remainder := n - 60
		if remainder == 11 {
			return "soixante-et-onze"
		}
		return "soixante-" + convert0to99(remainder)
	case 8:
		// 80–89: "quatre-vingts" only when exact; no "et" for 81
		if unit == 0 {
			return "quatre-vingts"
		}
		return "quatre-vingt-" + frenchUnits[unit]
	case 9:
		// 90–99: quatre-vingt + 10–19, no "et" variant
		return "quatre-vingt-" + convert0to99(n-80)
	}

	if unit == 0 {
		return frenchTens[ten]
	}
	if unit == 1 {
		return frenchTens[ten] + "-et-un"
	}
	return frenchTens[ten] + "-" + frenchUnits[unit]
}
