// Package main provides the entry point for the paybridge CLI tool.
package main

import "github.com/agentstation/paybridge/cmd/paybridge/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
