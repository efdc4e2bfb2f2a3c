package engine

import "testing"

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"50", 5000},
		{"5.5", 550},
		{"5.50", 550},
		{"¥125.00", 12500},
		{" ¥ 0.05", 5},
		{"-200.00", -20000},
		{".5", 50},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if err != nil {
			t.Errorf("ParseCents(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseCentsRejects(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "1.234", "1,50"} {
		if _, err := ParseCents(in); err == nil {
			t.Errorf("ParseCents(%q): expected error", in)
		}
	}
}

func TestCentsString(t *testing.T) {
	cases := []struct {
		in   Cents
		want string
	}{
		{12500, "125.00"},
		{-20000, "-200.00"},
		{5, "0.05"},
		{0, "0.00"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Cents(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind(" reading "); err != nil || k != KindReading {
		t.Fatalf("ParseKind(reading) = %q, %v", k, err)
	}
	if k, err := ParseKind("ENGLISH"); err != nil || k != KindEnglish {
		t.Fatalf("ParseKind(ENGLISH) = %q, %v", k, err)
	}
	if _, err := ParseKind("math"); err == nil {
		t.Fatalf("ParseKind(math): expected error")
	}
}

func TestStatusSubmittable(t *testing.T) {
	if !StatusTodo.Submittable() || !StatusRejected.Submittable() {
		t.Fatalf("todo and rejected must be submittable")
	}
	if StatusPending.Submittable() || StatusApproved.Submittable() {
		t.Fatalf("pending and approved must not be submittable")
	}
}
