// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package users defines the pointmoney account model and the credential
// check behind the login view.
//
// The demo build ships with a fixed two-account roster instead of a real
// user directory; Authenticate is a linear scan over that roster.
package users

import (
	"errors"
	"strings"
	"time"
)

// Role classifies an account within a workspace.
type Role string

// Roles known to the client.
const (
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

// User represents a pointmoney account as rendered by the client.
// It never carries a password; credentials live only in the demo roster.
type User struct {
	ID        string     `json:"id"`
	LoginID   string     `json:"loginId"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	Points    *int       `json:"points,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
}

// ProfileUpdate carries a partial profile edit. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name      *string
	Email     *string
	Points    *int
	AvatarURL *string
}

// Apply merges the update into u, field by field.
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Points != nil {
		u.Points = p.Points
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
}

// ErrInvalidCredentials signals that no demo account matches the submitted
// identifier/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// credential pairs a demo account with its plain-text password.
// Plain text is acceptable here only because these are throwaway fixtures
// baked into the demo build, never real credentials.
type credential struct {
	user     User
	password string
}

func points(n int) *int { return &n }

var demoRoster = []credential{
	{
		user: User{
			ID:      "1",
			LoginID: "tanaka",
			Email:   "tanaka@pointmoney.app",
			Name:    "田中 太郎",
			Role:    RoleWorker,
			Points:  points(1500),
		},
		password: "tanaka123",
	},
	{
		user: User{
			ID:      "2",
			LoginID: "admin",
			Email:   "admin@pointmoney.app",
			Name:    "管理者",
			Role:    RoleAdmin,
		},
		password: "admin123",
	},
}

// Authenticate scans the demo roster for an account whose email or login ID
// matches identifier and whose password matches exactly. The returned User
// is a copy without credential material. Email matching is case-insensitive;
// everything else is exact.
func Authenticate(identifier, password string) (User, error) {
	id := strings.TrimSpace(identifier)
	for _, c := range demoRoster {
		if !strings.EqualFold(c.user.Email, id) && c.user.LoginID != id {
			continue
		}
		if c.password != password {
			continue
		}
		return c.user, nil
	}
	return User{}, ErrInvalidCredentials
}

// DemoAccounts returns the roster accounts without passwords, for display
// on the login view.
func DemoAccounts() []User {
	out := make([]User, 0, len(demoRoster))
	for _, c := range demoRoster {
		out = append(out, c.user)
	}
	return out
}
