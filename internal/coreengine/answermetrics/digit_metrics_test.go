package answermetrics

import (
	"math"
	"testing"
)

func TestDigitAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		got      string
		want     float64
	}{
		{"exact match", "0612345678", "0612345678", 1.0},
		{"one substitution", "1998", "1999", 0.75},
		{"completely wrong", "12", "98", 0.0},
		{"empty input", "42", "", 0.0},
		{"both empty", "", "", 1.0},
		{"unexpected input against empty", "", "5", 0.0},
		{"long insertion clamps at zero", "1", "123456", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DigitAccuracy(tt.expected, tt.got)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("DigitAccuracy(%q, %q) = %v, want %v", tt.expected, tt.got, got, tt.want)
			}
		})
	}
}

func TestMeanDigitAccuracy(t *testing.T) {
	got := MeanDigitAccuracy([]string{"1998", "42"}, []string{"1998", "43"})
	want := (1.0 + 0.5) / 2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("MeanDigitAccuracy = %v, want %v", got, want)
	}

	if MeanDigitAccuracy(nil, nil) != 0.0 {
		t.Fatal("empty mean should be 0")
	}
}
