// Package cmd implements the jlox CLI on top of spf13/cobra.
// The external surface is pinned to a single positional argument and an
// exact usage string, so root.go dispatches directly to file or REPL mode
// itself rather than delegating to separate "run"/"repl" subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags (ldflags -X).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose bool
	dumpAST bool
)

// exitCode is set by whichever RunE ran and read by main() after Execute
// returns, since this CLI needs exact exit codes (64/65/70/0) that don't
// map onto cobra's default error-implies-exit-1 behavior.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "jlox [script]",
	Short: "jlox is a tree-walking interpreter for the Lox language",
	Long: `jlox is a Go implementation of Lox, the small dynamically-typed
scripting language from Crafting Interpreters: closures, lexical scoping,
and single-inheritance classes, evaluated by walking the parsed AST.

Run with no arguments to start an interactive prompt, or pass a single
script path to execute a file.`,
	Version:           Version,
	DisableAutoGenTag: true,
	Args:              cobra.ArbitraryArgs,
	RunE:              runRoot,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "render caret-pointing diagnostics")
	rootCmd.PersistentFlags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before running it")

	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

// Execute runs the root command and returns the process exit code the
// dispatched mode assigned (not merely 0/1).
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

func runRoot(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		exitCode = runRepl()
		return nil
	case 1:
		exitCode = runFile(args[0])
		return nil
	default:
		fmt.Println("Usage: jlox [script]")
		exitCode = 64
		return nil
	}
}
