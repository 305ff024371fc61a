/*
Command wordid converts numbers to word phrases and back.

Usage:

	wordid [-config file] [-trace level] encode [-compact] [-punk] N
	wordid [-config file] [-trace level] decode TEXT...
	wordid [-config file] [-trace level] schemes

Encode picks the narrowest phrase scheme able to hold the unsigned decimal
number N (up to 128 bit). Decode tries the schemes narrowest first. Schemes
lists the phrase schemes and the dictionaries they draw from.

The configuration file is YAML, with keys "style" (natural or compact),
"punk" (true or false) and "trace" (error, info or debug).
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/wordid"
	"github.com/npillmayer/wordid/dict"
	"lukechampine.com/uint128"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func tracer() tracing.Trace {
	return tracing.Select("wordid")
}

const usage = `usage:
	wordid [-config file] [-trace level] encode [-compact] [-punk] N
	wordid [-config file] [-trace level] decode TEXT...
	wordid [-config file] [-trace level] schemes
`

// run executes the command with arguments args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wordid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configFile := fs.String("config", "", "configuration `file` name")
	traceLevel := fs.String("trace", "", "trace `level` (error, info, debug)")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	cfg, err := ConfigFromFile(*configFile)
	if err != nil {
		fmt.Fprintln(stderr, "wordid: error parsing config:", err)
		return 1
	}
	if *traceLevel != "" {
		cfg.Trace = *traceLevel
		if err := cfg.validate(); err != nil {
			fmt.Fprintln(stderr, "wordid:", err)
			return 1
		}
	}
	setupTracing(cfg.Trace, stderr)

	if fs.NArg() == 0 {
		fs.Usage()
		return 1
	}
	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "encode":
		err = encode(cfg, cmdArgs, stdout, stderr)
	case "decode":
		err = decode(cmdArgs, stdout, stderr)
	case "schemes":
		err = schemes(stdout)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) && !errors.Is(err, errFlags) {
			fmt.Fprintln(stderr, "wordid:", err)
		}
		return 1
	}
	return 0
}

// errFlags signals a flag parsing error which has already been reported.
var errFlags = errors.New("invalid flags")

// selector hands out the same tracer for every key.
type selector struct {
	tracer tracing.Trace
}

func (sel selector) Select(string) tracing.Trace {
	return sel.tracer
}

func setupTracing(level string, w io.Writer) {
	t := gologadapter.New()
	t.SetOutput(w)
	t.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(selector{tracer: t})
}

func encode(cfg *Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	compact := fs.Bool("compact", cfg.Style == "compact", "print the hyphenated form")
	punk := fs.Bool("punk", cfg.Punk, "use the punk scheme for 64 bit numbers")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errFlags
	}
	if fs.NArg() != 1 {
		return errors.New("encode needs exactly one number")
	}
	v, err := parseNumber(fs.Arg(0))
	if err != nil {
		return err
	}
	var opts []wordid.EncodeOption
	if *punk {
		opts = append(opts, wordid.WithPunk())
	}
	p := wordid.Encode(v, opts...)
	tracer().Infof("encoding %s with scheme %s", v, p.Scheme().Name())
	if *compact {
		fmt.Fprintln(stdout, p.Hyphenated())
	} else {
		fmt.Fprintln(stdout, p.String())
	}
	return nil
}

// parseNumber parses an unsigned decimal number of up to 128 bits.
func parseNumber(s string) (uint128.Uint128, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 || strings.HasPrefix(s, "+") {
		return uint128.Zero, fmt.Errorf("%q is not an unsigned decimal number", s)
	}
	if n.BitLen() > 128 {
		return uint128.Zero, fmt.Errorf("%s does not fit into 128 bits", s)
	}
	return uint128.FromBig(n), nil
}

func decode(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.New("decode needs a phrase")
	}
	v, scheme, err := wordid.Decode(strings.Join(args, " "))
	if err != nil {
		var werr *wordid.UnrecognizedWordError
		if errors.As(err, &werr) {
			if s := werr.Suggest(3); len(s) > 0 {
				fmt.Fprintf(stderr, "wordid: did you mean %s?\n", strings.Join(s, ", "))
			}
		}
		return err
	}
	tracer().Infof("decoded phrase with scheme %s", scheme.Name())
	fmt.Fprintln(stdout, v)
	return nil
}

func schemes(stdout io.Writer) error {
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tBITS\tWORDS\tCAPACITY")
	for _, s := range wordid.Schemes() {
		capacity := new(big.Int).Lsh(big.NewInt(1), s.Width())
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", s.Name(), s.Width(), s.Len(), humanize.BigComma(capacity))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "DICTIONARY\tWORDS\tFINGERPRINT")
	for _, c := range dict.Classes() {
		d := dict.Get(c)
		fmt.Fprintf(w, "%s\t%s\t%016x\n", c, humanize.Comma(int64(d.Len())), d.Fingerprint())
	}
	return w.Flush()
}
