// Command jlox runs the jlox Lox interpreter: with no arguments it starts
// an interactive prompt, with one argument it executes that script file.
package main

import (
	"os"

	"github.com/cwbudde/jlox/cmd/jlox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
