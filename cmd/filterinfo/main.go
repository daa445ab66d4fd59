// Command filterinfo prints the coefficients and response of the filters
// in the biosignal family.
//
// Usage:
//
//	filterinfo [flags] kind
//	filterinfo -chain chain.yaml
//
// Examples:
//
//	filterinfo -fs 250 -low 0.5 -high 40 bandpass
//	filterinfo -fs 500 -freq 50 -q 30 notch
//	filterinfo -fs 1000 -cutoff 100 -order 2 lowpass
//	filterinfo -window 8 moving-average
//	filterinfo -chain chain.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-biosig/dsp/filter/family"
	"github.com/cwbudde/algo-biosig/dsp/filter/tf"
	"github.com/cwbudde/algo-biosig/internal/specfile"
)

type options struct {
	sampleRate float64
	low        float64
	high       float64
	cutoff     float64
	freq       float64
	quality    float64
	order      int
	window     int
	points     int
}

func main() {
	var o options
	flag.Float64Var(&o.sampleRate, "fs", 1000, "sample rate in Hz")
	flag.Float64Var(&o.low, "low", 5, "bandpass lower edge in Hz")
	flag.Float64Var(&o.high, "high", 30, "bandpass upper edge in Hz")
	flag.Float64Var(&o.cutoff, "cutoff", 40, "lowpass/highpass cutoff in Hz")
	flag.Float64Var(&o.freq, "freq", 50, "notch frequency in Hz")
	flag.Float64Var(&o.quality, "q", family.DefaultQuality, "notch quality factor")
	flag.IntVar(&o.order, "order", family.DefaultOrder, "Butterworth order")
	flag.IntVar(&o.window, "window", 5, "moving average window in samples")
	flag.IntVar(&o.points, "points", 11, "number of frequencies in the response table")
	chainPath := flag.String("chain", "", "YAML filter chain to describe instead of a single kind")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags] kind\n")
		fmt.Fprintf(os.Stderr, "       filterinfo -chain chain.yaml\n\n")
		fmt.Fprintf(os.Stderr, "Prints coefficients, steady state and magnitude response of a filter.\n")
		fmt.Fprintf(os.Stderr, "Kinds: bandpass, lowpass, highpass, notch, moving-average.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -fs 250 -low 0.5 -high 40 bandpass\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -fs 500 -freq 50 -q 30 notch\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -chain chain.yaml\n")
	}
	flag.Parse()

	specs, err := resolveSpecs(*chainPath, flag.Args(), o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for i, s := range specs {
		if i > 0 {
			fmt.Println()
		}
		if err := describe(os.Stdout, s, o.points); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func resolveSpecs(chainPath string, args []string, o options) ([]family.Spec, error) {
	if chainPath != "" {
		f, err := specfile.Load(chainPath)
		if err != nil {
			return nil, err
		}
		return f.Specs(o.sampleRate)
	}

	if len(args) != 1 {
		flag.Usage()
		return nil, fmt.Errorf("expected exactly one filter kind, got %d", len(args))
	}

	s, err := specFromFlags(args[0], o)
	if err != nil {
		return nil, err
	}
	return []family.Spec{s}, nil
}

func specFromFlags(name string, o options) (family.Spec, error) {
	kind, err := family.ParseKind(name)
	if err != nil {
		return family.Spec{}, err
	}

	var s family.Spec
	switch kind {
	case family.KindBandpass:
		s = family.Bandpass(o.low, o.high, o.sampleRate, family.WithOrder(o.order))
	case family.KindLowpass:
		s = family.Lowpass(o.cutoff, o.sampleRate, family.WithOrder(o.order))
	case family.KindHighpass:
		s = family.Highpass(o.cutoff, o.sampleRate, family.WithOrder(o.order))
	case family.KindNotch:
		s = family.Notch(o.freq, o.sampleRate, family.WithQuality(o.quality))
	case family.KindMovingAverage:
		s = family.MovingAverage(o.window)
		s.SampleRate = o.sampleRate
	}

	return s, s.Validate()
}

func describe(w io.Writer, s family.Spec, points int) error {
	if _, err := fmt.Fprintf(w, "%s\n", s); err != nil {
		return err
	}

	if !s.Kind.Rational() {
		_, err := fmt.Fprintf(w, "  FIR mean of %d samples, delay %.1f samples\n", s.Window, float64(s.Window-1)/2)
		return err
	}

	c, err := family.Design(s)
	if err != nil {
		return err
	}

	zi, err := tf.SteadyState(c)
	if err != nil {
		return err
	}

	stable, err := c.IsStable()
	if err != nil {
		return err
	}

	batch, err := family.NewBatch(s)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  order %d, %d taps, stable %t, DC gain %.6g\n", c.Order(), c.Taps(), stable, c.DCGain())
	fmt.Fprintf(w, "  offline input must exceed %d samples\n", batch.MinLength()-1)
	fmt.Fprintf(w, "  b  = %s\n", formatSlice(c.B))
	fmt.Fprintf(w, "  a  = %s\n", formatSlice(c.A))
	fmt.Fprintf(w, "  zi = %s\n\n", formatSlice(zi))

	return printResponse(w, c, s.SampleRate, points)
}

func printResponse(w io.Writer, c tf.Coefficients, sampleRate float64, points int) error {
	if points < 2 {
		points = 2
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "  Freq [Hz]\tMagnitude [dB]\tPhase [deg]\n"); err != nil {
		return fmt.Errorf("failed to write response header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "  ---------\t--------------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write response header: %w", err)
	}

	nyquist := sampleRate / 2
	for i := range points {
		f := nyquist * float64(i) / float64(points-1)
		mag := c.MagnitudeDB(f, sampleRate)
		phase := c.Phase(f, sampleRate) * 180 / math.Pi
		if _, err := fmt.Fprintf(tw, "  %.3f\t%s\t%.2f\n", f, formatDB(mag), phase); err != nil {
			return fmt.Errorf("failed to write response row: %w", err)
		}
	}

	return tw.Flush()
}

func formatDB(v float64) string {
	if math.IsInf(v, -1) || v < -300 {
		return "-inf"
	}
	return fmt.Sprintf("%.2f", v)
}

func formatSlice(v []float64) string {
	s := "["
	for i, x := range v {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%.10g", x)
	}
	return s + "]"
}
