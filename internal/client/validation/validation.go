// Package validation holds the pure field checks that run before any form
// submission reaches the network. A non-empty result aborts the submission
// client-side.
package validation

import (
	"regexp"
	"strings"

	"github.com/pushkard/userconsole/internal/client/api"
)

// MinPasswordLength is the enforced minimum; the messages below quote the
// same number.
const MinPasswordLength = 8

// emailRe checks for a local@domain.tld shape; full RFC parsing is the
// server's job.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateLogin checks a credential pair. The returned map is keyed by
// field name; an empty map means the form may be submitted.
func ValidateLogin(creds api.Credentials) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(creds.UserName) == "" {
		errs["userName"] = "Username is required."
	}
	checkPassword(errs, creds.PassWord)

	return errs
}

// ValidateNewUser checks an account-creation form.
func ValidateNewUser(user api.NewUserRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(user.UserName) == "" {
		errs["userName"] = "Username is required."
	}
	if strings.TrimSpace(user.FirstName) == "" {
		errs["firstName"] = "First Name is required."
	}
	if strings.TrimSpace(user.LastName) == "" {
		errs["lastName"] = "Last Name is required."
	}
	if strings.TrimSpace(user.Email) == "" {
		errs["email"] = "Email is required."
	} else if !emailRe.MatchString(user.Email) {
		errs["email"] = "Invalid email format."
	}
	checkPassword(errs, user.PassWord)

	return errs
}

func checkPassword(errs map[string]string, password string) {
	if strings.TrimSpace(password) == "" {
		errs["passWord"] = "Password is required."
	} else if len(password) < MinPasswordLength {
		errs["passWord"] = "Password must be at least 8 characters long."
	}
}
