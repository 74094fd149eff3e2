// Command bigcalc is a shunting-yard expression calculator over the
// bigdecimal/transcendental packages, deliberately thin: it is a
// consumer of the core library, not part of it (SPEC_FULL.md §1). It
// reads an expression from its arguments (or, with no arguments, one
// expression per line from stdin) and prints the result at the
// configured precision.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
	"github.com/dbfour-decimal/bigdecimal/internal/calcconfig"
)

func main() {
	var (
		precFlag     = flag.Int64("prec", 0, "working precision in significant digits (0 = use config default)")
		roundingFlag = flag.String("rounding", "", "rounding mode: half_even, half_up, half_down, down, up, floor, ceiling, round05up, half_odd (empty = use config default)")
		configFlag   = flag.String("config", "", "path to a bigcalc config TOML file (empty = default location)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bigcalc:", err)
		os.Exit(1)
	}

	prec := cfg.Precision()
	if *precFlag > 0 {
		prec = *precFlag
	}
	mode := cfg.RoundingMode()
	if *roundingFlag != "" {
		m, ok := parseRoundingFlag(*roundingFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "bigcalc: unrecognized rounding mode %q\n", *roundingFlag)
			os.Exit(1)
		}
		mode = m
	}

	args := flag.Args()
	if len(args) > 0 {
		expr := strings.Join(args, " ")
		if err := runOne(expr, prec, mode); err != nil {
			fmt.Fprintln(os.Stderr, "bigcalc:", err)
			os.Exit(1)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runOne(line, prec, mode); err != nil {
			fmt.Fprintln(os.Stderr, "bigcalc:", err)
		}
	}
}

func runOne(expr string, prec int64, mode bigdecimal.RoundingMode) error {
	toks, err := tokenize(expr)
	if err != nil {
		return err
	}
	result, err := newEvaluator(prec, mode).Eval(toks)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}

func loadConfig(path string) (*calcconfig.Config, error) {
	if path == "" {
		return calcconfig.Load()
	}
	return calcconfig.LoadFrom(path)
}

var roundingFlagNames = map[string]bigdecimal.RoundingMode{
	"half_even": bigdecimal.HalfEven,
	"half_up":   bigdecimal.HalfUp,
	"half_down": bigdecimal.HalfDown,
	"down":      bigdecimal.Down,
	"up":        bigdecimal.Up,
	"floor":     bigdecimal.Floor,
	"ceiling":   bigdecimal.Ceiling,
	"round05up": bigdecimal.Round05Up,
	"half_odd":  bigdecimal.HalfOdd,
}

func parseRoundingFlag(s string) (bigdecimal.RoundingMode, bool) {
	m, ok := roundingFlagNames[s]
	return m, ok
}
