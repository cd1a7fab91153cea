package timeutil

import "testing"

func TestParseHorizon(t *testing.T) {
	cases := []struct {
		in        string
		days      int
		canonical string
	}{
		{"", 7, "1w"},
		{"7d", 7, "1w"},
		{"10d", 10, "1w3d"},
		{"2w", 14, "2w"},
		{"1w3d", 10, "1w3d"},
		{" 2 semanas ", 14, "2w"},
		{"3 días", 3, "3d"},
	}
	for _, tc := range cases {
		days, canonical, err := ParseHorizon(tc.in)
		if err != nil {
			t.Errorf("ParseHorizon(%q): %v", tc.in, err)
			continue
		}
		if days != tc.days || canonical != tc.canonical {
			t.Errorf("ParseHorizon(%q) = %d %q, want %d %q", tc.in, days, canonical, tc.days, tc.canonical)
		}
	}
}

func TestParseHorizonRejects(t *testing.T) {
	for _, in := range []string{"0d", "5h", "abc", "-3d", "3x"} {
		if _, _, err := ParseHorizon(in); err == nil {
			t.Errorf("ParseHorizon(%q) should fail", in)
		}
	}
}
