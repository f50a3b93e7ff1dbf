package validators

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(555) 123-4567", "5551234567"},
		{"+1 555 123 4567", "5551234567"},
		{"15551234567", "5551234567"},
		{"5551234567", "5551234567"},
	}

	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsPhoneValid(t *testing.T) {
	if !IsPhoneValid("+1 (555) 123-4567") {
		t.Fatalf("valid US number rejected")
	}
	if IsPhoneValid("12345") {
		t.Fatalf("short number accepted")
	}
	if IsPhoneValid("") {
		t.Fatalf("empty number accepted")
	}
}
