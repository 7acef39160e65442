package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/cdecl-go/cdecl/pkg/decl"
	"github.com/cdecl-go/cdecl/pkg/lexer"
	"github.com/cdecl-go/cdecl/pkg/parser"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// version must be a valid semantic version; MustParse panics the
// build out of a bad release tag at startup
var version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		expr    string
		dTokens bool
		watch   bool
	)

	rootCmd := &cobra.Command{
		Use:   "cdecl [file...]",
		Short: "cdecl explains simplified C declarations in plain English",
		Long: `cdecl parses simplified C declarations (storage class, cv-qualifiers,
a base type, and declarators built from pointers, arrays, and function
parameter lists) and prints one plain-English explanation line per
declared identifier, e.g.

    $ echo 'int *x[3];' | cdecl
    x: array[3] of pointer to signed int

With no file arguments, input is read from stdin.`,
		Version:       semver.MustParse(version).String(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				if len(args) != 1 {
					fmt.Fprintln(errOut, "cdecl: --watch requires exactly one file")
					return errors.New("--watch requires exactly one file")
				}
				return watchFile(args[0], out, errOut)
			}

			if expr != "" {
				if dTokens {
					return dumpTokens(expr, out)
				}
				return explainTo(out, errOut, "<expr>", expr)
			}

			if len(args) == 0 {
				input, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					fmt.Fprintf(errOut, "cdecl: error reading stdin: %v\n", err)
					return err
				}
				if dTokens {
					return dumpTokens(string(input), out)
				}
				return explainTo(out, errOut, "<stdin>", string(input))
			}

			if dTokens {
				if len(args) != 1 {
					fmt.Fprintln(errOut, "cdecl: --dtokens requires exactly one file")
					return errors.New("--dtokens requires exactly one file")
				}
				content, err := os.ReadFile(args[0])
				if err != nil {
					fmt.Fprintf(errOut, "cdecl: error reading %s: %v\n", args[0], err)
					return err
				}
				return dumpTokens(string(content), out)
			}

			return explainFiles(args, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringVarP(&expr, "expr", "e", "", "Explain the given declaration instead of reading files")
	rootCmd.Flags().BoolVar(&dTokens, "dtokens", false, "Dump the token stream instead of explaining")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch the input file and re-explain on change")

	return rootCmd
}

// explainInput parses one input to completion and returns the
// rendered explanation lines
func explainInput(input string) (string, error) {
	drv := parser.NewDriver()
	if !drv.Parse(input) {
		return "", errors.New(drv.LastError())
	}
	var buf bytes.Buffer
	decl.NewPrinter(&buf).PrintAll(drv.Results())
	return buf.String(), nil
}

// explainTo explains one input and writes the result, reporting
// failures against the given input name
func explainTo(out, errOut io.Writer, name, input string) error {
	rendered, err := explainInput(input)
	if err != nil {
		fmt.Fprintf(errOut, "cdecl: %s: %v\n", name, err)
		return err
	}
	fmt.Fprint(out, rendered)
	return nil
}

// explainFiles parses each file with its own driver, concurrently,
// and prints the outputs in argument order
func explainFiles(paths []string, out, errOut io.Writer) error {
	outputs := make([]string, len(paths))
	var g errgroup.Group

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			drv := parser.NewDriver()
			if !drv.ParseFile(path) {
				return fmt.Errorf("%s: %s", path, drv.LastError())
			}
			var buf bytes.Buffer
			decl.NewPrinter(&buf).PrintAll(drv.Results())
			outputs[i] = buf.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(errOut, "cdecl: %v\n", err)
		return err
	}

	for _, o := range outputs {
		fmt.Fprint(out, o)
	}
	return nil
}

// watchFile explains the file once, then re-explains it on every
// write until the watcher fails. The parent directory is watched
// because editors commonly replace the file on save.
func watchFile(path string, out, errOut io.Writer) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		fmt.Fprintf(errOut, "cdecl: error watching %s: %v\n", path, err)
		return err
	}

	explain := func() {
		drv := parser.NewDriver()
		if !drv.ParseFile(path) {
			fmt.Fprintf(errOut, "cdecl: %s: %s\n", path, drv.LastError())
			return
		}
		decl.NewPrinter(out).PrintAll(drv.Results())
	}
	explain()

	target := filepath.Clean(path)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) == target && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				explain()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// dumpTokens writes the token stream, one token per line
func dumpTokens(input string, out io.Writer) error {
	l := lexer.New(input)
	for {
		tok := l.NextToken()
		if tok.Type == lexer.TokenEOF {
			return nil
		}
		fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Literal)
	}
}
