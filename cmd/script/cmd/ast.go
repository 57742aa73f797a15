package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-script/pkg/script"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:     "ast [archivo]",
	Aliases: []string{"parse"},
	Short:   "muestra el árbol de sintaxis abstracta en formato JSON",
	Args:    cobra.ExactArgs(1),
	RunE:    runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(c *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	result := script.AST(string(data))
	if result.Err != nil {
		printError(result.Err, string(data), args[0])
		os.Exit(1)
	}
	fmt.Fprintln(c.OutOrStdout(), result.JSON)
	return nil
}
