// internal/commands/list_commands.go
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// commandInfo holds the path and description of a command for display.
type commandInfo struct {
	Path        string
	Description string
}

// commandsCmd prints the command tree in a two-column layout.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var filtered []commandInfo
		for _, data := range collectCommandData(rootCmd, "", "") {
			if strings.Contains(data.Path, "completion") || strings.Contains(data.Path, "help") {
				continue
			}
			filtered = append(filtered, data)
		}
		listCommands(cmd.OutOrStdout(), filtered)
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

// listCommands writes paths and descriptions aligned on the widest path.
func listCommands(out io.Writer, commands []commandInfo) {
	width := 0
	for _, data := range commands {
		if w := runewidth.StringWidth(data.Path); w > width {
			width = w
		}
	}

	fmt.Fprintln(out, "Commands and Subcommands:")
	for _, data := range commands {
		fmt.Fprintf(out, "  %s  %s\n", runewidth.FillRight(data.Path, width), data.Description)
	}
}

// collectCommandData walks the command tree and returns indented
// path/description pairs.
func collectCommandData(cmd *cobra.Command, currentPath string, indent string) []commandInfo {
	fullPath := cmd.Name()
	if currentPath != "" {
		fullPath = currentPath + " " + cmd.Name()
	}

	all := []commandInfo{{Path: indent + fullPath, Description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		all = append(all, collectCommandData(sub, fullPath, indent+"  ")...)
	}
	return all
}
