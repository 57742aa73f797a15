// Package config resolves the interpreter's execution limits from CLI
// flags, falling back to environment variables and finally to the
// evaluator's built-in defaults.
package config

import (
	"os"
	"strconv"

	"github.com/cwbudde/go-script/internal/evaluator"
)

// Limits holds the resolved MaxSteps/MaxCallDepth budget for one run.
type Limits struct {
	MaxSteps     int
	MaxCallDepth int
}

// Resolve builds Limits from explicit flag values. A flagVal equal to its
// corresponding cobra default (i.e. the flag was not set by the user) is
// overridden by the matching environment variable when present.
func Resolve(flagMaxSteps, flagMaxCallDepth int) Limits {
	steps := flagMaxSteps
	if flagMaxSteps == evaluator.DefaultMaxSteps {
		steps = envInt("GO_SCRIPT_MAX_STEPS", flagMaxSteps)
	}
	depth := flagMaxCallDepth
	if flagMaxCallDepth == evaluator.DefaultMaxCallDepth {
		depth = envInt("GO_SCRIPT_MAX_CALL_DEPTH", flagMaxCallDepth)
	}
	return Limits{MaxSteps: steps, MaxCallDepth: depth}
}

func envInt(name string, fallback int) int {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
