// Package main is the entry point for the pointmoney client.
// It renders the points-tracking demo's authentication and profile views
// as a command-line interface.
package main

import (
	"github.com/shinichismile/pointmoney01/cmd"
)

func main() {
	cmd.Execute()
}
