package utils

import "testing"

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantOK   bool
	}{
		{name: "too_short", username: "ab", wantOK: false},
		{name: "too_long", username: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", wantOK: false}, // 33
		{name: "invalid_charset", username: "ab-cd", wantOK: false},
		{name: "space", username: "ab cd", wantOK: false},
		{name: "pure_number", username: "123456", wantOK: false},
		{name: "valid", username: "user_123", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidateUsername(tt.username)
			if ok != tt.wantOK {
				t.Fatalf("ValidateUsername(%q) ok=%v want=%v", tt.username, ok, tt.wantOK)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{name: "too_short", password: "a1b2c3", wantOK: false},
		{name: "no_digit", password: "abcdefgh", wantOK: false},
		{name: "no_letter", password: "12345678", wantOK: false},
		{name: "non_ascii", password: "pässword1", wantOK: false},
		{name: "valid_with_symbol", password: "abc123!@", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidatePassword(tt.password)
			if ok != tt.wantOK {
				t.Fatalf("ValidatePassword(%q) ok=%v want=%v", tt.password, ok, tt.wantOK)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	if ok, _ := ValidateEmail("alice@example.com"); !ok {
		t.Fatalf("expected valid email")
	}
	for _, bad := range []string{"", "alice", "Alice <alice@example.com>", "a@"} {
		if ok, _ := ValidateEmail(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
