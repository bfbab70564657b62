// Command rsmlc is the reference CLI front-end for the RSML parser: it
// supplies the file-I/O collaborator spec.md §6 scopes out of the core
// (derive-file discovery, built-in macro seeding) and hands the merged
// result to pkg/parser.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time version info, injected via ldflags:
//
//	go build -ldflags "-X main.version=... -X main.commit=... -X main.buildTime=..."
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rsmlc",
	Short: "rsmlc: RSML stylesheet compiler",
	Long: `rsmlc parses RSML (.rsml) stylesheets into their resolved style tree,
resolving @derive sibling files and @macro expansions per the RSML
front-end pipeline, and prints the result as JSON.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		c := commit
		if len(c) > 7 {
			c = c[:7]
		}
		fmt.Printf("rsmlc version %s (%s) built %s\n", version, c, buildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
