package oracle_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	oracle "github.com/mossy2100/bignumbers-oracle"
)

func TestParseOperand(t *testing.T) {
	ctx := oracle.NewContext(20)
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"int", "2", "2"},
		{"neg", "-3.5", "-3.5"},
		{"plus", "+4", "4"},
		{"bare-point", ".5", "0.5"},
		{"zero", "0", "0"},
		{"sci-neg", "1e-10", "1E-10"},
		{"sci-pos", "6.02E23", "6.02E+23"},
		{"inf", "Infinity", "Infinity"},
		{"short-inf", "-Inf", "-Infinity"},
		{"nan", "nan", "NaN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, err := oracle.ParseOperand(ctx, c.in)
			if err != nil {
				t.Fatalf("%q did not parse: %v", c.in, err)
			}
			if got := oracle.Render(x); got != c.want {
				t.Errorf("%q rendered as %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestParseOperandRejects(t *testing.T) {
	ctx := oracle.NewContext(20)
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"word", "two"},
		{"double-point", "1.2.3"},
		{"bare-exponent", "1e"},
		{"double-sign", "--1"},
		{"hex", "0x10"},
		{"leading-space", " 2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, err := oracle.ParseOperand(ctx, c.in)
			if err == nil {
				t.Fatalf("%q parsed to %s", c.in, oracle.Render(x))
			}
			var oe *oracle.OperandError
			if !errors.As(err, &oe) {
				t.Fatalf("error was %#v, not OperandError", err)
			}
			if oe.Text != c.in {
				t.Errorf("error reports %q, want %q", oe.Text, c.in)
			}
			if !strings.Contains(err.Error(), strconv.Quote(c.in)) {
				t.Errorf("%q doesn't quote the input %q", err.Error(), c.in)
			}
		})
	}
}

// Conversion happens under the context, so oversized operands shrink to the
// requested digits on entry.
func TestParseOperandRounds(t *testing.T) {
	ctx := oracle.NewContext(5)
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"fraction", "1.23456789", "1.2346"},
		{"integer", "123456789", "1.2346E+8"},
		{"short-stays", "1.25", "1.25"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, err := oracle.ParseOperand(ctx, c.in)
			if err != nil {
				t.Fatalf("%q did not parse: %v", c.in, err)
			}
			if got := oracle.Render(x); got != c.want {
				t.Errorf("%q at 5 digits rendered as %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestParsePrecision(t *testing.T) {
	valid := []struct {
		name string
		in   string
		want int
	}{
		{"one", "1", 1},
		{"fifty", "50", 50},
		{"plus", "+7", 7},
		{"zero-padded", "007", 7},
	}
	for _, c := range valid {
		t.Run(c.name, func(t *testing.T) {
			got, err := oracle.ParsePrecision(c.in)
			if err != nil {
				t.Fatalf("%q did not parse: %v", c.in, err)
			}
			if got != c.want {
				t.Errorf("%q parsed to %d, want %d", c.in, got, c.want)
			}
		})
	}
	invalid := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"zero", "0"},
		{"negative", "-3"},
		{"word", "x"},
		{"sci", "1e2"},
		{"fraction", "2.5"},
		{"space", " 5"},
	}
	for _, c := range invalid {
		t.Run(c.name, func(t *testing.T) {
			n, err := oracle.ParsePrecision(c.in)
			if err == nil {
				t.Fatalf("%q parsed to %d", c.in, n)
			}
			var pe *oracle.PrecisionError
			if !errors.As(err, &pe) {
				t.Fatalf("error was %#v, not PrecisionError", err)
			}
			if pe.Text != c.in {
				t.Errorf("error reports %q, want %q", pe.Text, c.in)
			}
		})
	}
}

// Both parse-class errors expose the offending text through InputError.
func TestInputErrors(t *testing.T) {
	_, err := oracle.ParseOperand(oracle.NewContext(9), "bogus")
	var ie oracle.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("operand error %#v is not an InputError", err)
	}
	if ie.Input() != "bogus" {
		t.Errorf("Input() = %q, want %q", ie.Input(), "bogus")
	}
	_, err = oracle.ParsePrecision("zero")
	if !errors.As(err, &ie) {
		t.Fatalf("precision error %#v is not an InputError", err)
	}
	if ie.Input() != "zero" {
		t.Errorf("Input() = %q, want %q", ie.Input(), "zero")
	}
}
