package validation

import "testing"

func TestIDNumber(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"A123456789", true},
		{"z987654321", true},
		{"12345678901", false}, // too long, no letter
		{"AB23456789", false},  // two letters
		{"A12345678", false},   // too short
		{"1123456789", false},  // leading digit
		{"A12345678x", false},  // trailing letter
		{"", false},
	}
	for _, c := range cases {
		if got := IDNumber(c.in); got != c.want {
			t.Errorf("IDNumber(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0912345678", true},
		{"091234567", false},
		{"09123456789", false},
		{"091234567a", false},
		{"", false},
	}
	for _, c := range cases {
		if got := Phone(c.in); got != c.want {
			t.Errorf("Phone(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestEmail(t *testing.T) {
	long := "a@" + string(make([]byte, 99)) + ".c"
	cases := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"user.example.com", false}, // no @
		{"user@examplecom", false},  // no dot
		{long, false},               // over 100 chars
	}
	for _, c := range cases {
		if got := Email(c.in); got != c.want {
			t.Errorf("Email(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPassword(t *testing.T) {
	if Password("12345") {
		t.Error("5-char password must be rejected")
	}
	if !Password("123456") {
		t.Error("6-char password must be accepted")
	}
	if Password(string(make([]byte, 101))) {
		t.Error("101-char password must be rejected")
	}
}

func TestGenderAndBirthDate(t *testing.T) {
	for _, g := range []string{"M", "F", "Other"} {
		if !Gender(g) {
			t.Errorf("Gender(%q) must be accepted", g)
		}
	}
	if Gender("male") || Gender("") {
		t.Error("unexpected gender values accepted")
	}

	if !BirthDate("1990-05-17") {
		t.Error("valid birth date rejected")
	}
	if BirthDate("17/05/1990") || BirthDate("1990-13-01") {
		t.Error("invalid birth date accepted")
	}
}
