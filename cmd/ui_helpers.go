// Copyright (c) 2025 pointmoney
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides CLI commands for the pointmoney client.
// This file contains prompt and rendering helpers shared by the views.
package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/shinichismile/pointmoney01/internal/auth"
	"github.com/shinichismile/pointmoney01/internal/forms"
	"github.com/shinichismile/pointmoney01/internal/terminal"
	"github.com/shinichismile/pointmoney01/internal/users"
)

var stdinReader = bufio.NewReader(os.Stdin)

// promptText reads a single line of input after printing label.
func promptText(label string) (string, error) {
	fmt.Print(label)
	s, err := stdinReader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// promptPassword reads a password without echo, then scrubs the prompt line
// so the credential prompt leaves no trace in the scrollback.
func promptPassword(label string) (string, error) {
	fmt.Print(label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	cursor.Hide()
	terminal.ClearPreviousLines(len(label))
	cursor.Show()
	return string(b), nil
}

// printFieldErrors renders per-field validation messages beneath the form.
func printFieldErrors(err error) {
	var ferrs forms.Errors
	if !asFormErrors(err, &ferrs) {
		pterm.Error.Println(err.Error())
		return
	}
	for _, field := range ferrs.Fields() {
		pterm.Println(pterm.NewStyle(pterm.FgRed).Sprint("  ✗ ") + fieldLabel(field) + ": " + ferrs[field])
	}
}

// fieldLabel maps schema field names to the labels shown on the forms.
func fieldLabel(field string) string {
	switch field {
	case "Identifier":
		return "Login ID or email"
	case "LoginID":
		return "Login ID"
	case "PasswordConfirm":
		return "Password (confirm)"
	case "Name":
		return "Display name"
	default:
		return field
	}
}

// printProfile renders the signed-in state as a two-column summary.
func printProfile(st auth.State) {
	u := st.User
	if u == nil {
		return
	}
	data := pterm.TableData{
		{"Name", u.Name},
		{"Login ID", u.LoginID},
		{"Email", u.Email},
		{"Role", roleBadge(u.Role)},
	}
	if u.Points != nil {
		data = append(data, []string{"Points", formatPoints(*u.Points)})
	}
	if u.LastLogin != nil {
		data = append(data, []string{"Last login", u.LastLogin.Local().Format("2006-01-02 15:04")})
	}
	if u.AvatarURL != "" {
		data = append(data, []string{"Avatar", u.AvatarURL})
	}
	if st.CustomIcon != "" {
		data = append(data, []string{"Custom icon", fmt.Sprintf("set (%d chars)", len(st.CustomIcon))})
	}
	_ = pterm.DefaultTable.WithData(data).Render()
}

// printDemoAccounts lists the fixture accounts users can sign in with.
func printDemoAccounts() {
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Demo accounts"))
	data := pterm.TableData{{"Login ID", "Email", "Role"}}
	for _, u := range users.DemoAccounts() {
		data = append(data, []string{u.LoginID, u.Email, string(u.Role)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func roleBadge(r users.Role) string {
	switch r {
	case users.RoleAdmin:
		return pterm.NewStyle(pterm.FgLightMagenta, pterm.Bold).Sprint("admin")
	default:
		return pterm.NewStyle(pterm.FgLightCyan).Sprint("worker")
	}
}

// formatPoints renders a point balance with thousands separators, e.g. "1,500 pt".
func formatPoints(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out + " pt"
}

// getRandomLoginGreeting returns a random greeting phrase with the user's name.
func getRandomLoginGreeting(name string) string {
	greetings := []string{
		"🎉 Welcome back, %s!",
		"✨ Great to see you, %s!",
		"👋 Hello %s! Your points are waiting.",
		"✅ Signed in as %s",
		"🌟 You're in, %s!",
	}
	idx := rand.Intn(len(greetings))
	return fmt.Sprintf(greetings[idx], name)
}

func asFormErrors(err error, target *forms.Errors) bool {
	ferrs, ok := err.(forms.Errors)
	if ok {
		*target = ferrs
	}
	return ok
}
