package validators

import "testing"

func TestIsEmailShapeValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"ana@example.com", true},
		{"a.b+tag@sub.example.com", true},
		{"", false},
		{"not-an-email", false},
		{"@example.com", false},
		{"ana@", false},
		{"ana@example", false},
		{"ana@.example.com", false},
		{"ana@example.com.", false},
	}

	for _, tt := range cases {
		if got := IsEmailShapeValid(tt.email); got != tt.want {
			t.Fatalf("IsEmailShapeValid(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
