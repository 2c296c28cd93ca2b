package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterForm() RegisterForm {
	return RegisterForm{
		LoginID:         "suzuki",
		Email:           "suzuki@pointmoney.app",
		Name:            "鈴木 花子",
		Role:            "worker",
		Password:        "s3cret-long",
		PasswordConfirm: "s3cret-long",
	}
}

func TestLoginFormValid(t *testing.T) {
	err := Validate(LoginForm{Identifier: "tanaka", Password: "tanaka123"})
	require.NoError(t, err)
}

func TestLoginFormFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		form      LoginForm
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing identifier",
			form:      LoginForm{Password: "tanaka123"},
			wantField: "Identifier",
			wantMsg:   "this field is required",
		},
		{
			name:      "missing password",
			form:      LoginForm{Identifier: "tanaka"},
			wantField: "Password",
			wantMsg:   "this field is required",
		},
		{
			name:      "short password",
			form:      LoginForm{Identifier: "tanaka", Password: "abc"},
			wantField: "Password",
			wantMsg:   "must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.form)
			require.Error(t, err)
			var ferrs Errors
			require.ErrorAs(t, err, &ferrs)
			assert.Equal(t, tt.wantMsg, ferrs[tt.wantField])
		})
	}
}

func TestRegisterFormValid(t *testing.T) {
	require.NoError(t, Validate(validRegisterForm()))
}

func TestRegisterFormFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RegisterForm)
		wantField string
		wantMsg   string
	}{
		{
			name:      "bad email",
			mutate:    func(f *RegisterForm) { f.Email = "not-an-email" },
			wantField: "Email",
			wantMsg:   "enter a valid email address",
		},
		{
			name:      "login id too short",
			mutate:    func(f *RegisterForm) { f.LoginID = "ab" },
			wantField: "LoginID",
			wantMsg:   "must be at least 3 characters",
		},
		{
			name:      "login id with symbols",
			mutate:    func(f *RegisterForm) { f.LoginID = "suzuki!" },
			wantField: "LoginID",
			wantMsg:   "letters and digits only",
		},
		{
			name:      "unknown role",
			mutate:    func(f *RegisterForm) { f.Role = "manager" },
			wantField: "Role",
			wantMsg:   "must be one of: worker, admin",
		},
		{
			name:      "short password",
			mutate:    func(f *RegisterForm) { f.Password = "short"; f.PasswordConfirm = "short" },
			wantField: "Password",
			wantMsg:   "must be at least 8 characters",
		},
		{
			name:      "confirmation mismatch",
			mutate:    func(f *RegisterForm) { f.PasswordConfirm = "different-pw" },
			wantField: "PasswordConfirm",
			wantMsg:   "passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegisterForm()
			tt.mutate(&form)

			err := Validate(form)
			require.Error(t, err)
			var ferrs Errors
			require.ErrorAs(t, err, &ferrs)
			assert.Equal(t, tt.wantMsg, ferrs[tt.wantField])
		})
	}
}

func TestErrorsSummaryAndFields(t *testing.T) {
	err := Validate(LoginForm{})
	require.Error(t, err)
	var ferrs Errors
	require.ErrorAs(t, err, &ferrs)
	assert.Equal(t, []string{"Identifier", "Password"}, ferrs.Fields())
	assert.Equal(t, "2 fields need attention", ferrs.Error())
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, ValidateEmail("tanaka@pointmoney.app"))
	require.Error(t, ValidateEmail("nope"))
	require.Error(t, ValidateEmail(""))
}

func TestValidateURL(t *testing.T) {
	require.NoError(t, ValidateURL("https://cdn.pointmoney.app/a.png"))
	require.Error(t, ValidateURL("not a url"))
	require.Error(t, ValidateURL(""))
}
