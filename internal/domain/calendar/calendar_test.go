package calendar

import (
	"testing"
	"time"

	"github.com/atelierops/atelier-scheduler/internal/httperr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkDays(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0, 1},
		{1, 1},
		{8, 1},
		{8.5, 2},
		{16, 2},
		{17, 3},
		{40, 5},
	}

	for _, tc := range cases {
		if got := WorkDays(tc.hours); got != tc.want {
			t.Errorf("WorkDays(%v) = %d, want %d", tc.hours, got, tc.want)
		}
	}
}

func TestTentativeDeliveryDateSkipsWeekend(t *testing.T) {
	// 2026-01-02 is a Friday; one work day lands on the next Monday.
	entry := date(2026, time.January, 2)

	got, err := TentativeDeliveryDate(entry, 8, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := date(2026, time.January, 5)
	if !got.Equal(want) {
		t.Errorf("got %s, want Monday %s", got, want)
	}
}

func TestTentativeDeliveryDateMondayEntry(t *testing.T) {
	// 16h => 2 work days, plus 2 tolerance days: Tue, Wed, Thu, Fri.
	entry := date(2026, time.January, 5) // Monday

	got, err := TentativeDeliveryDate(entry, 16, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := date(2026, time.January, 9) // Friday same week
	if !got.Equal(want) {
		t.Errorf("got %s, want Friday %s", got, want)
	}
}

func TestTentativeDeliveryDateCrossesWeekend(t *testing.T) {
	// Thursday entry with 3 business days: Fri, Mon, Tue.
	entry := date(2026, time.January, 1) // Thursday

	got, err := TentativeDeliveryDate(entry, 24, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := date(2026, time.January, 6) // Tuesday
	if !got.Equal(want) {
		t.Errorf("got %s, want Tuesday %s", got, want)
	}
}

func TestTentativeDeliveryDateNeverLandsOnWeekend(t *testing.T) {
	entry := date(2026, time.January, 5)

	for hours := 0.0; hours <= 80; hours += 4 {
		for tol := 0; tol <= 6; tol++ {
			got, err := TentativeDeliveryDate(entry, hours, tol)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if wd := got.Weekday(); wd == time.Saturday || wd == time.Sunday {
				t.Errorf("hours=%v tol=%d landed on %s", hours, tol, wd)
			}
		}
	}
}

func TestTentativeDeliveryDateMonotonic(t *testing.T) {
	entry := date(2026, time.March, 4) // Wednesday

	minResult := entry.AddDate(0, 0, 1)
	prevByHours := time.Time{}

	for hours := 0.0; hours <= 80; hours += 8 {
		got, err := TentativeDeliveryDate(entry, hours, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.Before(minResult) {
			t.Errorf("hours=%v: %s earlier than entry+1d", hours, got)
		}
		if !prevByHours.IsZero() && got.Before(prevByHours) {
			t.Errorf("hours=%v: not monotonic in hours", hours)
		}
		prevByHours = got

		prevByTol := time.Time{}
		for tol := 0; tol <= 5; tol++ {
			gotTol, err := TentativeDeliveryDate(entry, hours, tol)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !prevByTol.IsZero() && gotTol.Before(prevByTol) {
				t.Errorf("hours=%v tol=%d: not monotonic in tolerance", hours, tol)
			}
			prevByTol = gotTol
		}
	}
}

func TestTentativeDeliveryDateRejectsBadInput(t *testing.T) {
	entry := date(2026, time.January, 5)

	if _, err := TentativeDeliveryDate(entry, -1, 0); !httperr.IsBusiness(err, httperr.CodeInvalidParameter) {
		t.Errorf("negative hours: got %v, want invalid_parameter", err)
	}
	if _, err := TentativeDeliveryDate(entry, 8, -1); !httperr.IsBusiness(err, httperr.CodeInvalidParameter) {
		t.Errorf("negative tolerance: got %v, want invalid_parameter", err)
	}
	if _, err := TentativeDeliveryDate(time.Time{}, 8, 0); !httperr.IsBusiness(err, httperr.CodeInvalidParameter) {
		t.Errorf("zero entry date: got %v, want invalid_parameter", err)
	}
}
