package validation

import "regexp"

var passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)

// Contact covers create and full update: name, email and phone are all
// required, favorite may ride along.
var Contact = NewSchema(
	Rule{Field: "name", Required: true, MinLen: 3, MaxLen: 30},
	Rule{Field: "email", Required: true, Email: true},
	Rule{Field: "phone", Required: true, MinLen: 14, MaxLen: 20},
	Rule{Field: "favorite", Bool: true},
)

// Favorite covers the partial favorite patch only.
var Favorite = NewSchema(
	Rule{Field: "favorite", Required: true, Bool: true},
)

// UserCredentials covers signup and login. The password rule is
// pattern-only, it does not require the field by itself.
var UserCredentials = NewSchema(
	Rule{Field: "email", Required: true, Email: true},
	Rule{Field: "password", Pattern: passwordPattern},
)
