// Copyright 2024 Aleksandr Demakin. All rights reserved.

// fpbits shows the decomposition of floating-point bit patterns and assembles
// bit patterns from exponents and significands, mostly for debugging conversions.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/avdva/floatrep"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fpbits: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type config struct {
	t       floatrep.Type
	neg     bool
	payload floatrep.Bits
	json    bool
	trace   bool
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fpbits", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typeFlag := fs.String("type", "binary64", "floating-point `format`: binary16, binary32, binary64, binary128, extended80 or an alias")
	negFlag := fs.Bool("neg", false, "set the sign for encode and special")
	payloadFlag := fs.String("payload", "", "NaN payload as a hex `pattern`, defaults to a quiet NaN")
	jsonFlag := fs.Bool("json", false, "print the result as json")
	traceFlag := fs.Bool("trace", false, "log the steps of encode to stderr")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), help)
		fmt.Fprintln(fs.Output(), "\nOptional arguments:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return errors.New("no command")
	}

	t, err := floatrep.ParseType(*typeFlag)
	if err != nil {
		return err
	}
	cfg := config{t: t, neg: *negFlag, json: *jsonFlag, trace: *traceFlag}
	if len(*payloadFlag) > 0 {
		if cfg.payload, err = floatrep.ParseBits(*payloadFlag); err != nil {
			return fmt.Errorf("bad payload: %w", err)
		}
	}

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	var b floatrep.Bits
	switch cmd {
	case "decode":
		b, err = decode(cmdArgs)
	case "encode":
		b, err = encode(cfg, cmdArgs, stderr)
	case "special":
		b, err = special(cfg, cmdArgs)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		return err
	}
	return show(stdout, cfg, b)
}

func decode(args []string) (floatrep.Bits, error) {
	if len(args) != 1 {
		return floatrep.Bits{}, errors.New("decode needs exactly one argument")
	}
	return floatrep.ParseBits(args[0])
}

func encode(cfg config, args []string, stderr io.Writer) (floatrep.Bits, error) {
	if len(args) != 2 {
		return floatrep.Bits{}, errors.New("encode needs exactly two arguments")
	}
	exp, err := strconv.ParseInt(args[0], 0, 32)
	if err != nil {
		return floatrep.Bits{}, fmt.Errorf("bad exponent: %w", err)
	}
	sig, err := floatrep.ParseBits(args[1])
	if err != nil {
		return floatrep.Bits{}, fmt.Errorf("bad significand: %w", err)
	}
	var opts []floatrep.Option
	if cfg.trace {
		opts = append(opts, floatrep.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	return floatrep.NewAssembler(cfg.t, opts...).Number(cfg.neg, int32(exp), sig)
}

func special(cfg config, args []string) (floatrep.Bits, error) {
	if len(args) != 1 {
		return floatrep.Bits{}, errors.New("special needs exactly one argument")
	}
	switch args[0] {
	case "zero":
		return cfg.t.Zero(cfg.neg), nil
	case "inf", "infinity":
		return cfg.t.Infinity(cfg.neg), nil
	case "nan":
		return cfg.t.NaN(cfg.neg, cfg.payload), nil
	}
	return floatrep.Bits{}, fmt.Errorf("unknown special value %q", args[0])
}

type report struct {
	Bits  string         `json:"bits"`
	Parts floatrep.Parts `json:"parts"`
	Value string         `json:"value"`
}

func newReport(t floatrep.Type, b floatrep.Bits) report {
	r := report{
		Bits:  t.FormatBits(b),
		Parts: t.Decompose(b),
	}
	switch r.Parts.Class {
	case floatrep.ClassInfinity:
		r.Value = "+Inf"
		if r.Parts.Sign {
			r.Value = "-Inf"
		}
	case floatrep.ClassNaN:
		r.Value = "NaN"
	default:
		d, _ := t.Exact(b)
		r.Value = d.String()
		if r.Parts.Sign && d.IsZero() {
			r.Value = "-" + r.Value
		}
	}
	return r
}

func show(w io.Writer, cfg config, b floatrep.Bits) error {
	r := newReport(cfg.t, b)
	if cfg.json {
		return json.NewEncoder(w).Encode(r)
	}
	tw := tabwriter.NewWriter(w, 12, 1, 1, ' ', 0)
	fmt.Fprintf(tw, "type\t%s\n", r.Parts.Type)
	fmt.Fprintf(tw, "bits\t%s\n", r.Bits)
	fmt.Fprintf(tw, "sign\t%s\n", cfg.t.FormatBits(cfg.t.SignField(b)))
	fmt.Fprintf(tw, "exponent\t%s (biased %d)\n", cfg.t.FormatBits(cfg.t.ExponentField(b)), cfg.t.BiasedExponent(b))
	fmt.Fprintf(tw, "significand\t%s\n", cfg.t.FormatBits(cfg.t.SignificandField(b)))
	fmt.Fprintf(tw, "class\t%s\n", r.Parts.Class)
	fmt.Fprintf(tw, "parts\t%s\n", r.Parts)
	fmt.Fprintf(tw, "value\t%s\n", r.Value)
	return tw.Flush()
}

const help = `fpbits shows the structure of a floating-point bit pattern.
Usage:
	fpbits [flags] decode pattern
	fpbits [flags] encode exponent significand
	fpbits [flags] special zero|inf|nan

Where pattern and significand are hex numbers, like 0x3C00, and exponent is
an integer literal in Go syntax. encode builds significand * 2^exponent.
`
