package timezone

import (
	"testing"
	"time"
)

func TestParseOffset(t *testing.T) {
	cases := []struct {
		in      string
		seconds int
		wantErr bool
	}{
		{in: "-08:00", seconds: -8 * 3600},
		{in: "+05:30", seconds: 5*3600 + 30*60},
		{in: "Z", seconds: 0},
		{in: "+00:00", seconds: 0},
		{in: "PST", wantErr: true},
		{in: "-8:00", wantErr: true},
		{in: "+15:00", wantErr: true},
		{in: "+01:75", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		loc, err := ParseOffset(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseOffset(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseOffset(%q): unexpected error %v", tc.in, err)
		}
		_, off := time.Date(2026, 1, 1, 0, 0, 0, 0, loc).Zone()
		if off != tc.seconds {
			t.Fatalf("ParseOffset(%q): offset %d, want %d", tc.in, off, tc.seconds)
		}
	}
}

func TestLocationFallback(t *testing.T) {
	def, _ := ParseOffset("-05:00")

	loc, err := Location("+02:00", def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, off := time.Now().In(loc).Zone(); off != 2*3600 {
		t.Fatalf("location override not applied, offset %d", off)
	}

	loc, err = Location("", def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, off := time.Now().In(loc).Zone(); off != -5*3600 {
		t.Fatalf("expected configured default, offset %d", off)
	}

	loc, err = Location("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, off := time.Now().In(loc).Zone(); off != -8*3600 {
		t.Fatalf("expected built-in default, offset %d", off)
	}
}

func TestLocationMalformedOffset(t *testing.T) {
	def, _ := ParseOffset("-05:00")

	for _, in := range []string{"garbage", "PST", "-8:00"} {
		if loc, err := Location(in, def); err == nil {
			t.Fatalf("Location(%q): expected error, got %v", in, loc)
		}
	}
}

func TestDayBounds(t *testing.T) {
	loc, _ := ParseOffset("-08:00")
	// 2026-03-10T05:00Z is still 2026-03-09 at -08:00.
	start, end := DayBounds(time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC), loc)

	if start.Format(time.RFC3339) != "2026-03-09T00:00:00-08:00" {
		t.Fatalf("unexpected start %s", start.Format(time.RFC3339))
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("unexpected day length %s", end.Sub(start))
	}
}
