package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		password   string
		wantID     string
		wantErr    bool
	}{
		{name: "worker by login id", identifier: "tanaka", password: "tanaka123", wantID: "1"},
		{name: "worker by email", identifier: "tanaka@pointmoney.app", password: "tanaka123", wantID: "1"},
		{name: "email match is case-insensitive", identifier: "TANAKA@Pointmoney.App", password: "tanaka123", wantID: "1"},
		{name: "identifier is trimmed", identifier: "  tanaka  ", password: "tanaka123", wantID: "1"},
		{name: "admin by login id", identifier: "admin", password: "admin123", wantID: "2"},
		{name: "right identifier wrong password", identifier: "tanaka", password: "admin123", wantErr: true},
		{name: "password of the other account", identifier: "admin", password: "tanaka123", wantErr: true},
		{name: "unknown identifier", identifier: "suzuki", password: "tanaka123", wantErr: true},
		{name: "password is case-sensitive", identifier: "tanaka", password: "TANAKA123", wantErr: true},
		{name: "empty pair", identifier: "", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Authenticate(tt.identifier, tt.password)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, u.ID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, u.ID)
		})
	}
}

func TestAuthenticateDoesNotStampLastLogin(t *testing.T) {
	u, err := Authenticate("tanaka", "tanaka123")
	require.NoError(t, err)
	// Stamping happens in the auth store at login time, not here.
	assert.Nil(t, u.LastLogin)
}

func TestDemoAccounts(t *testing.T) {
	accounts := DemoAccounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, RoleWorker, accounts[0].Role)
	assert.Equal(t, RoleAdmin, accounts[1].Role)
	require.NotNil(t, accounts[0].Points)
	assert.Equal(t, 1500, *accounts[0].Points)
}

func TestProfileUpdateApply(t *testing.T) {
	name := "新しい名前"
	pts := 2000
	u := User{ID: "1", LoginID: "tanaka", Email: "tanaka@pointmoney.app", Name: "田中 太郎"}

	ProfileUpdate{Name: &name, Points: &pts}.Apply(&u)

	assert.Equal(t, "新しい名前", u.Name)
	require.NotNil(t, u.Points)
	assert.Equal(t, 2000, *u.Points)
	// Untouched fields keep their values.
	assert.Equal(t, "tanaka@pointmoney.app", u.Email)
	assert.Equal(t, "tanaka", u.LoginID)
}

func TestProfileUpdateApplyEmpty(t *testing.T) {
	u := User{Name: "田中 太郎", Email: "tanaka@pointmoney.app"}
	ProfileUpdate{}.Apply(&u)
	assert.Equal(t, "田中 太郎", u.Name)
	assert.Equal(t, "tanaka@pointmoney.app", u.Email)
}
