package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	want := New(2025, time.March, 7)
	cases := []string{
		"2025-03-07",
		"2025-3-7",
		"03/07/2025",
		"3/7/2025",
		"2025-03-07 00:00:00",
		"Mar 7, 2025",
		"45723", // Excel serial for 2025-03-07
	}
	for _, c := range cases {
		got, err := Parse(c)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", c, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %s, want %s", c, got, want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, c := range []string{"", "Total", "n/a", "123"} {
		if _, err := Parse(c); err == nil {
			t.Errorf("Parse(%q) expected an error", c)
		}
	}
}

func TestMinMax(t *testing.T) {
	a := New(2025, time.January, 2)
	b := New(2025, time.January, 5)
	var zero Date

	if got := Min(a, b); got != a {
		t.Errorf("Min = %s, want %s", got, a)
	}
	if got := Max(a, b); got != b {
		t.Errorf("Max = %s, want %s", got, b)
	}
	if got := Min(zero, b); got != b {
		t.Errorf("Min with zero = %s, want %s", got, b)
	}
	if got := Max(a, zero); got != a {
		t.Errorf("Max with zero = %s, want %s", got, a)
	}
}
