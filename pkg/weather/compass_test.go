package weather

import "testing"

func TestCardinal(t *testing.T) {
	table := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{11, "N"},
		{11.25, "N"},
		{12, "NNE"},
		{90, "E"},
		{180, "S"},
		{200, "SSW"},
		{270, "W"},
		{348.75, "N"},
		{359, "N"},
		{360, "N"},
		{-90, "W"},
	}
	for _, tc := range table {
		if got := Cardinal(tc.degrees); got != tc.want {
			t.Errorf("Cardinal(%v) = %q, want %q", tc.degrees, got, tc.want)
		}
	}
}
