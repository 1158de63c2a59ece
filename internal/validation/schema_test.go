package validation

import (
	"strings"
	"testing"
)

func TestContactSchema(t *testing.T) {
	valid := Fields{
		"name":  "Jan Kowalski",
		"email": "jan@example.com",
		"phone": "+48 123 456 7890",
	}
	if err := Contact.Validate(valid); err != nil {
		t.Fatalf("valid contact rejected: %v", err)
	}

	cases := []struct {
		name    string
		fields  Fields
		wantSub string
	}{
		{"missing name", Fields{"email": "a@b.co", "phone": "+48 123 456 7890"}, `"name" is required`},
		{"empty name", Fields{"name": "", "email": "a@b.co", "phone": "+48 123 456 7890"}, `"name" is not allowed to be empty`},
		{"empty email", Fields{"name": "abc", "email": "", "phone": "+48 123 456 7890"}, `"email" is not allowed to be empty`},
		{"short name", Fields{"name": "ab", "email": "a@b.co", "phone": "+48 123 456 7890"}, `"name" length`},
		{"long name", Fields{"name": strings.Repeat("x", 31), "email": "a@b.co", "phone": "+48 123 456 7890"}, `"name" length`},
		{"missing email", Fields{"name": "abc", "phone": "+48 123 456 7890"}, `"email" is required`},
		{"single segment domain", Fields{"name": "abc", "email": "a@b", "phone": "+48 123 456 7890"}, `"email" must be a valid email`},
		{"missing phone", Fields{"name": "abc", "email": "a@b.co"}, `"phone" is required`},
		{"short phone", Fields{"name": "abc", "email": "a@b.co", "phone": "123"}, `"phone" length`},
		{"long phone", Fields{"name": "abc", "email": "a@b.co", "phone": strings.Repeat("1", 21)}, `"phone" length`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Contact.Validate(tc.fields)
			if err == nil {
				t.Fatalf("expected violation, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.wantSub)
			}
		})
	}
}

func TestContactSchemaReportsFirstViolation(t *testing.T) {
	err := Contact.Validate(Fields{})
	if err == nil {
		t.Fatalf("expected violation, got nil")
	}
	if !strings.Contains(err.Error(), `"name"`) {
		t.Fatalf("expected the name rule to trip first, got %q", err.Error())
	}
}

func TestFavoriteSchema(t *testing.T) {
	if err := Favorite.Validate(Fields{"favorite": true}); err != nil {
		t.Fatalf("bool favorite rejected: %v", err)
	}
	if err := Favorite.Validate(Fields{"favorite": false}); err != nil {
		t.Fatalf("false favorite rejected: %v", err)
	}
	if err := Favorite.Validate(Fields{"favorite": "yes"}); err == nil {
		t.Fatalf("non-bool favorite accepted")
	}
	if err := Favorite.Validate(Fields{}); err == nil {
		t.Fatalf("absent favorite accepted")
	}
}

func TestUserCredentialsSchema(t *testing.T) {
	if err := UserCredentials.Validate(Fields{"email": "a@b.co", "password": "abc123"}); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	// Pattern-only password rule: absent password passes the shape, but an
	// empty string is present and fails it.
	if err := UserCredentials.Validate(Fields{"email": "a@b.co"}); err != nil {
		t.Fatalf("absent password rejected by pattern-only rule: %v", err)
	}
	if err := UserCredentials.Validate(Fields{"email": "a@b.co", "password": ""}); err == nil {
		t.Fatalf("empty-string password accepted")
	}
	if err := UserCredentials.Validate(Fields{"password": "abc123"}); err == nil {
		t.Fatalf("missing email accepted")
	}
	if err := UserCredentials.Validate(Fields{"email": "a@b.co", "password": "with spaces!"}); err == nil {
		t.Fatalf("non-alphanumeric password accepted")
	}
	if err := UserCredentials.Validate(Fields{"email": "a@b.co", "password": "ab"}); err == nil {
		t.Fatalf("too-short password accepted")
	}
}
