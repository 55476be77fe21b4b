package normalize

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeDateRelative(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"days", "2d", date(2025, time.June, 13)},
		{"weeks", "3w", date(2025, time.May, 25)},
		{"one month", "1mo", date(2025, time.May, 15)},
		{"years", "2yr", date(2023, time.June, 15)},
		{"hours same day", "5h", date(2025, time.June, 15)},
		{"hours cross midnight", "26h", date(2025, time.June, 14)},
		{"long unit word", "2 weeks", date(2025, time.June, 1)},
		{"trailing ago", "3d ago", date(2025, time.June, 12)},
		{"edited noise", "Edited • 1w", date(2025, time.June, 8)},
		{"uppercase", "2D", date(2025, time.June, 13)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.raw, ref)
			if !ok {
				t.Fatalf("NormalizeDate(%q) not recognized", tt.raw)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NormalizeDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeDateLiterals(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)

	if got, ok := NormalizeDate("Today", ref); !ok || !got.Equal(date(2025, time.June, 15)) {
		t.Errorf("Today = %v (ok=%v)", got, ok)
	}
	if got, ok := NormalizeDate("Yesterday", ref); !ok || !got.Equal(date(2025, time.June, 14)) {
		t.Errorf("Yesterday = %v (ok=%v)", got, ok)
	}
	if got, ok := NormalizeDate("just now", ref); !ok || !got.Equal(date(2025, time.June, 15)) {
		t.Errorf("just now = %v (ok=%v)", got, ok)
	}
}

func TestNormalizeDateAbsolute(t *testing.T) {
	ref := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"explicit year", "Dec 25, 2024", date(2024, time.December, 25)},
		{"long month explicit year", "December 25, 2024", date(2024, time.December, 25)},
		{"no comma", "Dec 25 2024", date(2024, time.December, 25)},
		// Year inference: Dec 25 seen in January must roll back a year.
		{"year rollback", "Dec 25", date(2024, time.December, 25)},
		{"same year", "Jan 5", date(2025, time.January, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.raw, ref)
			if !ok {
				t.Fatalf("NormalizeDate(%q) not recognized", tt.raw)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NormalizeDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeDateMonthClamping(t *testing.T) {
	// One month before Mar 31 is the last day of February, never Mar 3.
	ref := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	got, ok := NormalizeDate("1mo", ref)
	if !ok {
		t.Fatal("1mo not recognized")
	}
	if want := date(2025, time.February, 28); !got.Equal(want) {
		t.Errorf("1mo before Mar 31 2025 = %v, want %v", got, want)
	}

	// Leap year keeps Feb 29.
	ref = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	got, _ = NormalizeDate("1mo", ref)
	if want := date(2024, time.February, 29); !got.Equal(want) {
		t.Errorf("1mo before Mar 31 2024 = %v, want %v", got, want)
	}

	// A year back from Feb 29 clamps to Feb 28.
	ref = time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	got, _ = NormalizeDate("1yr", ref)
	if want := date(2023, time.February, 28); !got.Equal(want) {
		t.Errorf("1yr before Feb 29 2024 = %v, want %v", got, want)
	}
}

func TestNormalizeDateUnrecognized(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"", "garbage", "soon", "d2", "???", "fourteen days"} {
		if _, ok := NormalizeDate(raw, ref); ok {
			t.Errorf("NormalizeDate(%q) recognized, want ok=false", raw)
		}
	}
}

func TestNormalizeDateDeterministic(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)
	first, _ := NormalizeDate("3w", ref)
	second, _ := NormalizeDate("3w", ref)
	if !first.Equal(second) {
		t.Errorf("same inputs produced %v and %v", first, second)
	}
}
