package sentencevalidator

import "testing"

func TestFormatWithPauses(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		chunks   []string
		pause    bool
		want     string
	}{
		{
			name:     "pause before second chunk",
			sentence: "Il est quatorze heures trente-cinq à Paris.",
			chunks:   []string{"quatorze heures", "trente-cinq"},
			pause:    true,
			want:     "Il est quatorze heures … trente-cinq à Paris.",
		},
		{
			name:     "pause disabled is a no-op",
			sentence: "Il est quatorze heures trente-cinq à Paris.",
			chunks:   []string{"quatorze heures", "trente-cinq"},
			pause:    false,
			want:     "Il est quatorze heures trente-cinq à Paris.",
		},
		{
			name:     "single chunk is a no-op",
			sentence: "La chambre cent deux est prête.",
			chunks:   []string{"cent deux"},
			pause:    true,
			want:     "La chambre cent deux est prête.",
		},
		{
			name:     "missing chunk returns sentence unchanged",
			sentence: "Il est quatorze heures à Paris.",
			chunks:   []string{"quatorze heures", "trente-cinq"},
			pause:    true,
			want:     "Il est quatorze heures à Paris.",
		},
		{
			name:     "many chunks pause before each after the first",
			sentence: "Rappelle le zéro six trente-deux quarante-huit vite.",
			chunks:   []string{"zéro six", "trente-deux", "quarante-huit"},
			pause:    true,
			want:     "Rappelle le zéro six … trente-deux … quarante-huit vite.",
		},
		{
			name:     "chunks out of order returns sentence unchanged",
			sentence: "Le trente-deux passe avant le zéro six ici.",
			chunks:   []string{"zéro six", "trente-deux"},
			pause:    true,
			want:     "Le trente-deux passe avant le zéro six ici.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWithPauses(tt.sentence, tt.chunks, tt.pause); got != tt.want {
				t.Fatalf("FormatWithPauses() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWithPausesPreservesPrefix(t *testing.T) {
	sentence := "Le billet coûte vingt euros cinquante en tout."
	chunks := []string{"vingt euros", "cinquante"}

	got := FormatWithPauses(sentence, chunks, true)

	const prefix = "Le billet coûte vingt euros "
	if got[:len(prefix)] != prefix {
		t.Fatalf("prefix changed: %q", got)
	}
	if got != "Le billet coûte vingt euros … cinquante en tout." {
		t.Fatalf("unexpected result: %q", got)
	}
}
