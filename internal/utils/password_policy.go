package utils

import "strings"

// passwordSymbols is the punctuation set that satisfies the special
// character rule.
const passwordSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

// CheckPasswordPolicy validates a registration password against the
// composite policy: minimum length 6, at least one uppercase letter, one
// lowercase letter, one digit and one symbol.  Every unmet rule is
// reported so the caller can show a single combined message; nil means the
// password is acceptable.
func CheckPasswordPolicy(password string) []string {
	var missing []string
	if len(password) < 6 {
		missing = append(missing, "at least 6 characters")
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		missing = append(missing, "at least one uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "at least one lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "at least one number")
	}
	if !hasSymbol {
		missing = append(missing, "at least one special character (!@#$%^&* etc.)")
	}
	return missing
}

// PasswordPolicyMessage joins the unmet rules into the user-facing message,
// e.g. "Password must contain at least 6 characters, at least one uppercase
// letter".  It returns "" when every rule is satisfied.
func PasswordPolicyMessage(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return "Password must contain " + strings.Join(missing, ", ")
}
