package validation

import (
	"fmt"
	"regexp"
)

// Fields is the structured input a handler extracts from a request body
// before hitting the store.
type Fields map[string]interface{}

// Rule describes the constraints for a single field. A rule only applies
// when the field is present in the input, unless it is marked Required.
type Rule struct {
	Field    string
	Required bool
	MinLen   int
	MaxLen   int
	Email    bool
	Bool     bool
	Pattern  *regexp.Regexp
}

// Schema is an ordered rule list. Validate reports the first violated rule
// so the response message is deterministic.
type Schema struct {
	rules []Rule
}

func NewSchema(rules ...Rule) *Schema {
	return &Schema{rules: rules}
}

// Email shape with at least two domain segments, e.g. "a@b.co" but not "a@b".
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s.]+(\.[^@\s.]+)+$`)

func (s *Schema) Validate(fields Fields) error {
	for _, r := range s.rules {
		val, present := fields[r.Field]
		// An empty string is not "absent": it violates any rule that
		// constrains the string's content, even a non-required one.
		if str, ok := val.(string); ok && str == "" {
			if r.constrainsString() {
				return fmt.Errorf("%q is not allowed to be empty", r.Field)
			}
			present = false
		}
		if !present {
			if r.Required {
				return fmt.Errorf("%q is required", r.Field)
			}
			continue
		}
		if err := r.check(val); err != nil {
			return err
		}
	}
	return nil
}

func (r Rule) constrainsString() bool {
	return r.Required || r.MinLen > 0 || r.MaxLen > 0 || r.Email || r.Pattern != nil
}

func (r Rule) check(val interface{}) error {
	if r.Bool {
		if _, ok := val.(bool); !ok {
			return fmt.Errorf("%q must be a boolean", r.Field)
		}
		return nil
	}
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("%q must be a string", r.Field)
	}
	if r.MinLen > 0 && len(str) < r.MinLen {
		return fmt.Errorf("%q length must be at least %d characters long", r.Field, r.MinLen)
	}
	if r.MaxLen > 0 && len(str) > r.MaxLen {
		return fmt.Errorf("%q length must be less than or equal to %d characters long", r.Field, r.MaxLen)
	}
	if r.Email && !emailPattern.MatchString(str) {
		return fmt.Errorf("%q must be a valid email", r.Field)
	}
	if r.Pattern != nil && !r.Pattern.MatchString(str) {
		return fmt.Errorf("%q fails to match the required pattern", r.Field)
	}
	return nil
}
