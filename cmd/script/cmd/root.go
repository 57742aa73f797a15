// Package cmd implements the script CLI's cobra command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "script",
	Short: "script runs the Spanish-keyword scripting language",
	Long: `script is the command-line front end for the interpreter: it
scans, parses, and evaluates source written with Spanish keywords
(variable, si, mientras, funcion, mostrar, ...).`,
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print extra diagnostic information")
}
