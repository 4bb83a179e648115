package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"fraclib/src/math/frac"
)

func main() {
	app := cli.NewApp()
	app.Name = "fraccalc"
	app.Usage = "Overflow-checked mixed fraction arithmetic on the command line."
	app.Commands = []*cli.Command{
		{
			Name:      "eval",
			Aliases:   []string{"e"},
			Usage:     "Evaluate a binary expression, e.g. eval \"1 1/4\" + 1/2",
			ArgsUsage: "LHS OP RHS",
			Action:    evalCmd,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "simplify",
					Aliases: []string{"s"},
					Usage:   "reduce the result to canonical form",
				},
			},
		},
		{
			Name:    "read",
			Aliases: []string{"r"},
			Usage:   "Read fractions or decimals from stdin, one per line, and print their canonical forms",
			Action:  readCmd,
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func evalCmd(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("usage: eval LHS OP RHS", 2)
	}
	lhs, err := operand(c.Args().Get(0))
	if err != nil {
		return err
	}
	rhs, err := operand(c.Args().Get(2))
	if err != nil {
		return err
	}

	var out frac.Frac
	switch op := c.Args().Get(1); op {
	case "+":
		out, err = lhs.Add(rhs)
	case "-":
		out, err = lhs.Sub(rhs)
	case "*", "x":
		out, err = lhs.Mul(rhs)
	case "/":
		out, err = lhs.Div(rhs)
	default:
		return cli.Exit(fmt.Sprintf("unknown operator %q", op), 2)
	}
	if err != nil {
		return err
	}
	if c.Bool("simplify") {
		out.Simplify()
	}
	fmt.Println(out)
	return nil
}

// operand accepts what the line reader accepts: a full decimal value or
// the fraction grammar.
func operand(s string) (frac.Frac, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return frac.FromFloat(v)
	}
	return frac.Parse(s)
}

func readCmd(c *cli.Context) error {
	r := frac.NewReader(os.Stdin)
	for {
		f, err := r.ReadFrac()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(f.Simplified())
	}
}
