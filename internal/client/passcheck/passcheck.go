// Package passcheck evaluates a candidate password against the signup
// password policy: minimum length, character classes, and confirmation match.
// It is pure and is meant to be re-run on every edit of either field.
package passcheck

// MinLength is the minimum acceptable password length.
const MinLength = 8

// Result holds the outcome of one policy evaluation, one flag per rule.
type Result struct {
	LengthOK bool
	HasUpper bool
	HasLower bool
	HasDigit bool
	Matches  bool
}

// OK reports whether every rule passed. Note that two empty strings match,
// so Matches alone never implies a valid password.
func (r Result) OK() bool {
	return r.LengthOK && r.HasUpper && r.HasLower && r.HasDigit && r.Matches
}

// Check evaluates password against the policy and compares it with confirm.
// Character classes are detected with a single byte scan over the ASCII
// ranges '0'-'9', 'a'-'z' and 'A'-'Z'.
func Check(password, confirm string) Result {
	r := Result{
		LengthOK: len(password) >= MinLength,
		Matches:  password == confirm,
	}

	for i := 0; i < len(password); i++ {
		switch c := password[i]; {
		case c >= '0' && c <= '9':
			r.HasDigit = true
		case c >= 'a' && c <= 'z':
			r.HasLower = true
		case c >= 'A' && c <= 'Z':
			r.HasUpper = true
		}
	}

	return r
}
