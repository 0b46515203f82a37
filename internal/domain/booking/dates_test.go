package booking

import (
	"testing"
	"time"

	"github.com/tiozaobarbearia/agenda-api/internal/httperr"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("05/03/2099")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Day() != 5 || got.Month() != time.March || got.Year() != 2099 {
		t.Fatalf("unexpected date: %v", got)
	}

	for _, bad := range []string{"", "2099-03-05", "32/01/2099", "abc"} {
		if _, err := ParseDate(bad); !httperr.IsBusiness(err, "invalid_date") {
			t.Fatalf("ParseDate(%q): expected invalid_date, got %v", bad, err)
		}
	}
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.Local)

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"yesterday", time.Date(2025, 6, 14, 0, 0, 0, 0, time.Local), true},
		{"today is bookable even late in the day", time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), false},
		{"tomorrow", time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPastDate(tc.date, now); got != tc.want {
				t.Fatalf("IsPastDate(%v) = %v, want %v", tc.date, got, tc.want)
			}
		})
	}
}
