package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-script/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [archivo]",
	Short: "muestra los tokens producidos por el analizador léxico",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(c *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	l := lexer.New(string(data))
	for {
		tok, err := l.Next()
		if err != nil {
			return fmt.Errorf("%s: %v", args[0], err)
		}
		fmt.Fprintf(c.OutOrStdout(), "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Lexeme)
		if tok.Type.String() == "EOF" {
			return nil
		}
	}
}
