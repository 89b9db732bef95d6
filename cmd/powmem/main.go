// Command powmem mines and decodes public keys that carry an age, sex and
// location prefix.
//
// Usage:
//
//	powmem roll --age 1 --sex 0 --lat 59.33 --lon 18.06
//	powmem decode npub1...
//	powmem flag u6282sv
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/andreiashu/powmem/internal/logging"
)

// globalOptions apply to every subcommand.
type globalOptions struct {
	Verbose []bool `short:"v" long:"verbose" description:"Show more log output (repeat for debug)"`
}

var opts globalOptions

func newParser() *flags.Parser {
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLogging()
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}
	parser.AddCommand("roll", "Mine a key", "Mine a secret key whose public key encodes age, sex and location.", &rollCommand{})
	parser.AddCommand("decode", "Decode a public key", "Decode age, sex and location from a hex or npub public key.", &decodeCommand{})
	parser.AddCommand("flag", "Find the nearest flag", "Rank the built-in flags against a geohash.", &flagCommand{})
	parser.AddCommand("pack", "Pack a geohash", "Pack a geohash into its bit buffer.", &packCommand{})
	parser.AddCommand("unpack", "Unpack a geohash", "Unpack a hex bit buffer into a geohash.", &unpackCommand{})
	return parser
}

func setupLogging() {
	logging.SetOutput(os.Stderr)
	switch n := len(opts.Verbose); {
	case n >= 2:
		logging.SetLevel(logging.LevelDebug)
	case n == 1:
		logging.SetLevel(logging.LevelInfo)
	default:
		logging.SetLevel(logging.LevelWarning)
	}
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdout io.Writer) int {
	opts = globalOptions{}
	if _, err := newParser().ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return 0
		}
		logging.Errorf("%v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
