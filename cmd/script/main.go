// Command script is the CLI entrypoint for the interpreter.
package main

import "github.com/cwbudde/go-script/cmd/script/cmd"

func main() {
	cmd.Execute()
}
