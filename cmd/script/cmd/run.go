package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-script/internal/config"
	"github.com/cwbudde/go-script/internal/evaluator"
	"github.com/cwbudde/go-script/internal/ierrors"
	"github.com/cwbudde/go-script/internal/parser"
	"github.com/cwbudde/go-script/internal/render"
	"github.com/cwbudde/go-script/internal/runtime"
	"github.com/spf13/cobra"
)

var (
	evalSource   string
	maxSteps     int
	maxCallDepth int
)

var runCmd = &cobra.Command{
	Use:   "run [archivo]",
	Short: "ejecuta un script",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&evalSource, "eval", "e", "", "evalúa código fuente en línea en lugar de un archivo")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", evaluator.DefaultMaxSteps, "número máximo de pasos antes de abortar")
	runCmd.Flags().IntVar(&maxCallDepth, "max-call-depth", evaluator.DefaultMaxCallDepth, "profundidad máxima de llamadas a funciones")
	rootCmd.AddCommand(runCmd)
}

func runRun(c *cobra.Command, args []string) error {
	source, file, err := resolveSource(args)
	if err != nil {
		return err
	}

	p, perr := parser.New(source)
	if perr != nil {
		printError(perr, source, file)
		os.Exit(1)
	}
	prog, perr := p.ParseProgram()
	if perr != nil {
		printError(perr, source, file)
		os.Exit(1)
	}

	limits := config.Resolve(maxSteps, maxCallDepth)
	cfg := evaluator.Config{
		MaxSteps:     limits.MaxSteps,
		MaxCallDepth: limits.MaxCallDepth,
		Output:       c.OutOrStdout(),
	}
	ev := evaluator.New(cfg)
	env := runtime.NewEnvironment()
	val, eerr := ev.Eval(prog, env)
	if eerr != nil {
		printError(eerr, source, file)
		os.Exit(1)
	}

	if verbose {
		fmt.Fprintf(c.ErrOrStderr(), "valor final: %s (%s)\n", val.String(), val.Tag)
	}
	if val.Tag == runtime.TagHTML {
		if html, err := render.ToHTML(val); err == nil {
			fmt.Fprintln(c.OutOrStdout(), html)
		}
	}
	if val.Tag == runtime.TagCSS {
		if css, err := render.ToCSS(val); err == nil {
			fmt.Fprintln(c.OutOrStdout(), css)
		}
	}
	return nil
}

func resolveSource(args []string) (source, file string, err error) {
	if evalSource != "" {
		return evalSource, "<linea-de-comandos>", nil
	}
	if len(args) == 0 {
		return "", "", fmt.Errorf("se requiere un archivo o --eval")
	}
	data, readErr := os.ReadFile(args[0])
	if readErr != nil {
		return "", "", readErr
	}
	return string(data), args[0], nil
}

func printError(err *ierrors.Error, source, file string) {
	fmt.Fprintln(os.Stderr, ierrors.FormatWithContext(err, source, file))
}
