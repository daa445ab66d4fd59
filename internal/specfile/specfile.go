// Package specfile reads and writes filter chains described in YAML:
//
//	sample_rate: 1000
//	mode: offline
//	filters:
//	  - kind: bandpass
//	    low: 5
//	    high: 30
//	    order: 4
//	  - kind: notch
//	    freq: 50
//	    quality: 30
//	  - kind: moving-average
//	    window: 5
//
// Omitted orders and quality factors take the family defaults.
package specfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-biosig/dsp/filter/family"
)

// Mode selects realtime or offline processing.
type Mode int

const (
	ModeRealtime Mode = iota
	ModeOffline
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeRealtime:
		return "realtime"
	case ModeOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// ParseMode parses "realtime" or "offline" (also "streaming" and "batch").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "realtime", "streaming":
		return ModeRealtime, nil
	case "offline", "batch":
		return ModeOffline, nil
	default:
		return 0, fmt.Errorf("unknown processing mode: %s", s)
	}
}

// MarshalYAML implements yaml.Marshaler for Mode.
func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Mode.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	mode, err := ParseMode(s)
	if err != nil {
		return err
	}

	*m = mode

	return nil
}

// Filter is one stage of a chain.
type Filter struct {
	Kind    string  `yaml:"kind"`
	Low     float64 `yaml:"low,omitempty"`
	High    float64 `yaml:"high,omitempty"`
	Cutoff  float64 `yaml:"cutoff,omitempty"`
	Freq    float64 `yaml:"freq,omitempty"`
	Quality float64 `yaml:"quality,omitempty"`
	Order   int     `yaml:"order,omitempty"`
	Window  int     `yaml:"window,omitempty"`
}

// File is a filter chain document.
type File struct {
	SampleRate float64  `yaml:"sample_rate,omitempty"` // 0: take the rate of the input
	Mode       Mode     `yaml:"mode"`
	BlockSize  int      `yaml:"block_size,omitempty"`
	Filters    []Filter `yaml:"filters"`
}

var errNoFilters = errors.New("specfile: no filters defined")

// Load reads a chain from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("specfile: %w", err)
	}

	return Parse(data)
}

// Parse decodes a chain document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoFilters
		}

		return nil, fmt.Errorf("specfile: %w", err)
	}

	if len(f.Filters) == 0 {
		return nil, errNoFilters
	}

	if f.SampleRate < 0 || f.BlockSize < 0 {
		return nil, errors.New("specfile: negative sample_rate or block_size")
	}

	return &f, nil
}

// Encode writes f as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("specfile: %w", err)
	}

	return enc.Close()
}

// Specs converts the stages to family specs at sampleRate. A non-zero
// SampleRate in the file takes precedence.
func (f *File) Specs(sampleRate float64) ([]family.Spec, error) {
	if f.SampleRate > 0 {
		sampleRate = f.SampleRate
	}

	specs := make([]family.Spec, len(f.Filters))

	for i, flt := range f.Filters {
		s, err := flt.Spec(sampleRate)
		if err != nil {
			return nil, fmt.Errorf("specfile: filter %d: %w", i, err)
		}

		specs[i] = s
	}

	return specs, nil
}

// Spec converts one stage to a family spec and validates it.
func (flt Filter) Spec(sampleRate float64) (family.Spec, error) {
	kind, err := family.ParseKind(flt.Kind)
	if err != nil {
		return family.Spec{}, err
	}

	var opts []family.Option
	if flt.Order != 0 {
		opts = append(opts, family.WithOrder(flt.Order))
	}

	if flt.Quality != 0 {
		opts = append(opts, family.WithQuality(flt.Quality))
	}

	var s family.Spec

	switch kind {
	case family.KindBandpass:
		s = family.Bandpass(flt.Low, flt.High, sampleRate, opts...)
	case family.KindLowpass:
		s = family.Lowpass(flt.Cutoff, sampleRate, opts...)
	case family.KindHighpass:
		s = family.Highpass(flt.Cutoff, sampleRate, opts...)
	case family.KindNotch:
		s = family.Notch(flt.Freq, sampleRate, opts...)
	case family.KindMovingAverage:
		s = family.MovingAverage(flt.Window)
	}

	if err := s.Validate(); err != nil {
		return family.Spec{}, err
	}

	return s, nil
}

// FromSpecs builds a document from family specs.
func FromSpecs(sampleRate float64, mode Mode, specs ...family.Spec) *File {
	f := &File{SampleRate: sampleRate, Mode: mode, Filters: make([]Filter, len(specs))}

	for i, s := range specs {
		flt := Filter{Kind: s.Kind.String()}

		switch s.Kind {
		case family.KindBandpass:
			flt.Low, flt.High, flt.Order = s.Low, s.High, s.Order
		case family.KindLowpass, family.KindHighpass:
			flt.Cutoff, flt.Order = s.Cutoff, s.Order
		case family.KindNotch:
			flt.Freq, flt.Quality = s.Freq, s.Quality
		case family.KindMovingAverage:
			flt.Window = s.Window
		}

		f.Filters[i] = flt
	}

	return f
}
