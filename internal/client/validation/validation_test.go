package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pushkard/userconsole/internal/client/api"
)

func validNewUser() api.NewUserRequest {
	return api.NewUserRequest{
		UserName:  "jdoe",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "jdoe@example.com",
		PassWord:  "Str0ng@pw",
		Roles:     api.RoleUser,
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name       string
		creds      api.Credentials
		wantFields []string
	}{
		{
			name:  "valid pair",
			creds: api.Credentials{UserName: "jdoe", PassWord: "Str0ng@pw"},
		},
		{
			name:       "both empty",
			creds:      api.Credentials{},
			wantFields: []string{"userName", "passWord"},
		},
		{
			name:       "whitespace only username",
			creds:      api.Credentials{UserName: "   ", PassWord: "Str0ng@pw"},
			wantFields: []string{"userName"},
		},
		{
			name:       "short password",
			creds:      api.Credentials{UserName: "jdoe", PassWord: "short"},
			wantFields: []string{"passWord"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateLogin(tc.creds)
			require.Len(t, errs, len(tc.wantFields))
			for _, f := range tc.wantFields {
				require.Contains(t, errs, f)
			}
		})
	}
}

func TestPasswordBoundary(t *testing.T) {
	creds := api.Credentials{UserName: "jdoe", PassWord: strings.Repeat("a", MinPasswordLength-1)}
	errs := ValidateLogin(creds)
	require.Equal(t, "Password must be at least 8 characters long.", errs["passWord"])

	creds.PassWord = strings.Repeat("a", MinPasswordLength)
	require.Empty(t, ValidateLogin(creds))
}

func TestValidateNewUser(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		require.Empty(t, ValidateNewUser(validNewUser()))
	})

	t.Run("every field missing", func(t *testing.T) {
		errs := ValidateNewUser(api.NewUserRequest{})
		require.Equal(t, map[string]string{
			"userName":  "Username is required.",
			"firstName": "First Name is required.",
			"lastName":  "Last Name is required.",
			"email":     "Email is required.",
			"passWord":  "Password is required.",
		}, errs)
	})
}

func TestValidateNewUserEmailShape(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"jdoe@example.com", true},
		{"j.doe+tag@sub.example.io", true},
		{"plainaddress", false},
		{"missing@tld", false},
		{"spaces in@example.com", false},
		{"@example.com", false},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			u := validNewUser()
			u.Email = tc.email
			errs := ValidateNewUser(u)
			if tc.ok {
				require.NotContains(t, errs, "email")
			} else {
				require.Equal(t, "Invalid email format.", errs["email"])
			}
		})
	}
}
