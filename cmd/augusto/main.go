// cmd/augusto/main.go
package main

import (
	cmd "github.com/lucasrafaldini/augusto/internal/cli"
)

// Populated by -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the augusto CLI by delegating to the cobra root command
// defined in the cli package.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
