// cmd/benchplot/main.go
package main

import (
	cmd "github.com/mwiater/benchplot/internal/commands"
)

// Set by -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main injects the build information and hands control to the cobra root
// command.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
