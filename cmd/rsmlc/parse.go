package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmoose/rsml/pkg/rsml"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.rsml>",
	Short: "Parse an RSML file and print its resolved style tree as JSON",
	Long: `parse runs the full RSML front-end pipeline over a file: it resolves
@derive sibling files and @macro expansions in the same directory as the
input, then prints the resulting TreeNodeGroup (root plus indexed nodes)
as JSON.

Errors never propagate out of the parser itself (spec.md §7) — a
malformed input simply produces a sparser tree, not a failure. This
command only fails on file I/O (the main file can't be read) or on write
errors while encoding the result.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var prettyOutput bool

func init() {
	parseCmd.Flags().BoolVar(&prettyOutput, "pretty", true, "indent the JSON output")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := rsml.LoadFile(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	if prettyOutput {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rsml.Dump(g)); err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	return nil
}
