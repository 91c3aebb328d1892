package pricing

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassify_HolidayWindow(t *testing.T) {
	// Every date within 4 days of a holiday is expensive, on both sides.
	for _, holiday := range holidayDates {
		for k := 0; k <= 4; k++ {
			before := holiday.AddDate(0, 0, -k)
			after := holiday.AddDate(0, 0, k)

			if got := Classify(before); got != Expensive {
				t.Errorf("Classify(%s) = %s, want expensive (holiday %s - %d)",
					before.Format("2006-01-02"), got, holiday.Format("2006-01-02"), k)
			}
			if got := Classify(after); got != Expensive {
				t.Errorf("Classify(%s) = %s, want expensive (holiday %s + %d)",
					after.Format("2006-01-02"), got, holiday.Format("2006-01-02"), k)
			}
		}
	}
}

func TestClassify_JustOutsideHolidayWindow(t *testing.T) {
	// 2025-07-04 is Independence Day; five days later is Wednesday
	// 2025-07-09, far from any other holiday, so it drops to cheap.
	if got := Classify(date("2025-07-09")); got != Cheap {
		t.Errorf("Classify(2025-07-09) = %s, want cheap", got)
	}
}

func TestClassify_Weekend(t *testing.T) {
	// Saturdays and Sundays at least 5 days from every holiday.
	weekends := []string{
		"2025-03-15", // Saturday
		"2025-03-16", // Sunday
		"2025-08-09", // Saturday
		"2026-03-21", // Saturday
		"2026-04-12", // Sunday
	}
	for _, s := range weekends {
		if got := Classify(date(s)); got != Normal {
			t.Errorf("Classify(%s) = %s, want normal", s, got)
		}
	}
}

func TestClassify_Weekday(t *testing.T) {
	weekdays := []string{
		"2025-03-12", // Wednesday
		"2025-08-12", // Tuesday
		"2026-03-18", // Wednesday
		"2026-04-09", // Thursday
	}
	for _, s := range weekdays {
		if got := Classify(date(s)); got != Cheap {
			t.Errorf("Classify(%s) = %s, want cheap", s, got)
		}
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	noon := time.Date(2025, 7, 4, 12, 30, 0, 0, time.UTC)
	if got := Classify(noon); got != Expensive {
		t.Errorf("Classify(noon on 2025-07-04) = %s, want expensive", got)
	}
}

func TestClassifyDates(t *testing.T) {
	dates := []time.Time{
		date("2025-07-04"),
		date("2025-03-15"),
		date("2025-03-12"),
	}

	got := ClassifyDates(dates)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}

	want := map[string]Category{
		"2025-07-04": Expensive,
		"2025-03-15": Normal,
		"2025-03-12": Cheap,
	}
	for k, cat := range want {
		if got[k] != cat {
			t.Errorf("ClassifyDates[%s] = %s, want %s", k, got[k], cat)
		}
	}
}

func TestClassifyRange(t *testing.T) {
	got := ClassifyRange(date("2025-03-10"), date("2025-03-16"))
	if len(got) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(got))
	}

	// Batch result must agree with per-date classification.
	for d := date("2025-03-10"); !d.After(date("2025-03-16")); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if got[key] != Classify(d) {
			t.Errorf("ClassifyRange[%s] = %s, want %s", key, got[key], Classify(d))
		}
	}
}
