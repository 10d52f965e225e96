package numberwords

import "testing"

func TestIntToFrench(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "zéro"},
		{1, "un"},
		{9, "neuf"},
		{10, "dix"},
		{11, "onze"},
		{16, "seize"},
		{17, "dix-sept"},
		{20, "vingt"},
		{21, "vingt-et-un"},
		{35, "trente-cinq"},
		{50, "cinquante"},
		{61, "soixante-et-un"},
		{70, "soixante-dix"},
		{71, "soixante-et-onze"},
		{77, "soixante-dix-sept"},
		{79, "soixante-dix-neuf"},
		{80, "quatre-vingts"},
		{81, "quatre-vingt-un"},
		{89, "quatre-vingt-neuf"},
		{90, "quatre-vingt-dix"},
		{91, "quatre-vingt-onze"},
		{99, "quatre-vingt-dix-neuf"},
		{100, "cent"},
		{101, "cent un"},
		{171, "cent soixante-et-onze"},
		{200, "deux cents"},
		{203, "deux cent trois"},
		{999, "neuf cent quatre-vingt-dix-neuf"},
		{1000, "mille"},
		{1001, "mille un"},
		{1235, "mille deux cent trente-cinq"},
		{2000, "deux mille"},
		{9999, "neuf mille neuf cent quatre-vingt-dix-neuf"},
	}
	for _, tt := range tests {
		got, err := IntToFrench(tt.n)
		if err != nil {
			t.Fatalf("IntToFrench(%d) returned error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("IntToFrench(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestIntToFrenchOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 10000, 123456} {
		if _, err := IntToFrench(n); err == nil {
			t.Errorf("IntToFrench(%d) expected an error", n)
		}
	}
}
