// cmd/ttsreport/main.go
package main

import (
	"github.com/mwiater/ttsreport/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	setVersionInfo = commands.SetVersionInfo
	executeCmd     = commands.Execute
)

// main starts the ttsreport CLI by delegating to the cobra root command.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
