// Command mpcalc reads one arithmetic expression and prints its exact value.
//
//	$ echo '123.45+67.89*(2-1)' | mpcalc
//	Result: 191.34
//	$ mpcalc '2^3'
//	Error: invalid expression at offset 1
//
// On failure the error is written to stderr and the exit status is 1.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/golang/glog"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mpcalc/bignum"
	"github.com/mpcalc/bignum/eval"
)

const prompt = "Enter expression (e.g., 123.45 + 67.89 * (2 - 1) or 999 / 7): "

var (
	karatsubaThreshold = bignum.DefaultKaratsubaThreshold
	maxDepth           = eval.DefaultMaxDepth
	expr               string

	exitCode int

	// Root is the mpcalc command. The expression is taken from --expr, the
	// first argument, or the first line of stdin, in that order.
	Root = &cobra.Command{
		Use:   "mpcalc [expression]",
		Short: "mpcalc evaluates an arithmetic expression over arbitrary-precision decimals.",
		Long: "`mpcalc` evaluates one expression built from decimal numbers, `+ - * / %` and parentheses, " +
			"and prints the exact result.\n\n" +
			"Division keeps only the digits produced by dividing the coefficients, so `1/3` is `0`.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := bignum.BaseContext.WithKaratsubaThreshold(karatsubaThreshold)
			e := &eval.Evaluator{Ctx: &ctx, MaxDepth: maxDepth}
			log.V(1).Infof("karatsuba-threshold=%d max-depth=%d", ctx.KaratsubaThreshold, maxDepth)

			// An empty expression given on the command line is still evaluated.
			if cmd.Flags().Changed("expr") {
				args = []string{expr}
			}
			in := cmd.InOrStdin()
			showPrompt := len(args) == 0 && in == io.Reader(os.Stdin) && isatty.IsTerminal(os.Stdin.Fd())
			exitCode = run(e, in, cmd.OutOrStdout(), cmd.ErrOrStderr(), args, showPrompt)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}
)

func init() {
	Root.Flags().IntVar(&karatsubaThreshold, "karatsuba-threshold", karatsubaThreshold, "operand length in digits above which multiplication uses Karatsuba; 0 disables it")
	Root.Flags().IntVar(&maxDepth, "max-depth", maxDepth, "maximum parenthesis nesting depth")
	Root.Flags().StringVarP(&expr, "expr", "e", "", "expression to evaluate instead of reading one from stdin")
}

func main() {
	// glog registers its flags on the standard flag set.
	Root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	// hack to get rid of an "ERROR: logging before flag.Parse"
	args := os.Args[:]
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	if err := Root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Flush()
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// run evaluates one expression, taken from args[0] or, when args is empty,
// from the first line of in. It returns the process exit status.
func run(e *eval.Evaluator, in io.Reader, out, errOut io.Writer, args []string, showPrompt bool) int {
	var line string
	if len(args) > 0 {
		line = args[0]
	} else {
		if showPrompt {
			fmt.Fprint(out, prompt)
		}
		var err error
		line, err = readLine(in)
		if err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return 1
		}
	}
	log.V(1).Infof("evaluating %q", line)

	d, err := e.Evaluate(line)
	if err != nil {
		log.V(1).Infof("evaluate %q: %+v", line, err)
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "Result: %s\n", d)
	return 0
}

// readLine returns the first line of r without its line terminator. The rest
// of the line is passed on verbatim. Empty input is an empty line.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
