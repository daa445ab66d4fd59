package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-biosig/dsp/filter/family"
	"github.com/cwbudde/algo-biosig/internal/specfile"
)

const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavFormatPCM = 1
)

type filterStats struct {
	sampleRate int
	channels   int
	bitDepth   int
	samples    int
	clipped    int
}

// wavInput holds a fully decoded WAV file.
type wavInput struct {
	rate     int
	channels int
	bitDepth int
	data     []int
}

// readWAVInput decodes the whole file at path.
func readWAVInput(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	in := &wavInput{
		rate:     int(decoder.SampleRate),
		channels: int(decoder.NumChans),
		bitDepth: int(decoder.BitDepth),
		data:     buf.Data,
	}
	if in.channels < 1 {
		return nil, fmt.Errorf("invalid WAV file: %s has no channels", path)
	}

	switch in.bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return nil, fmt.Errorf("unsupported bit depth: %d", in.bitDepth)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", in.rate, in.channels, in.bitDepth)
	}

	return in, nil
}

// writeWAVOutput encodes interleaved samples as PCM.
func writeWAVOutput(path string, sampleRate, bitDepth, channels int, data []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}

	return f.Close()
}

// getMaxValue returns the full-scale sample value for the bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// deinterleave splits interleaved integer samples into per-channel
// buffers scaled to [-1, 1].
func deinterleave(data []int, channels, bitDepth int) [][]float64 {
	n := len(data) / channels
	scale := 1 / getMaxValue(bitDepth)

	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, n)
	}

	for i := range n {
		for ch := range channels {
			out[ch][i] = float64(data[i*channels+ch]) * scale
		}
	}

	return out
}

// interleave converts per-channel samples back to integers, clipping to
// full scale. It returns the number of clipped samples.
func interleave(channelData [][]float64, bitDepth int) ([]int, int) {
	if len(channelData) == 0 {
		return nil, 0
	}

	channels := len(channelData)
	n := len(channelData[0])
	maxVal := getMaxValue(bitDepth)

	out := make([]int, n*channels)
	clipped := 0

	for ch, samples := range channelData {
		for i, v := range samples {
			if v > 1 || v < -1 || math.IsNaN(v) {
				clipped++
			}
			if math.IsNaN(v) {
				v = 0
			}
			v = max(-1, min(1, v))
			out[i*channels+ch] = int(math.Round(v * maxVal))
		}
	}

	return out, clipped
}

// channelFilter filters one channel in place or returns a new slice.
type channelFilter func(x []float64) ([]float64, error)

// newChannelFilters builds one filter per channel for the chain mode.
// Realtime chains carry state, so every channel gets its own cascade.
func newChannelFilters(specs []family.Spec, mode specfile.Mode, channels, blockSize int) ([]channelFilter, error) {
	filters := make([]channelFilter, channels)
	blockSize = max(blockSize, 1)

	if mode == specfile.ModeOffline {
		chain, err := family.NewBatchChain(specs)
		if err != nil {
			return nil, err
		}
		for ch := range filters {
			filters[ch] = chain.Filter
		}
		return filters, nil
	}

	for ch := range filters {
		chain, err := family.NewStreamingChain(specs...)
		if err != nil {
			return nil, err
		}
		filters[ch] = func(x []float64) ([]float64, error) {
			for start := 0; start < len(x); start += blockSize {
				chain.ProcessBlock(x[start:min(start+blockSize, len(x))])
			}
			return x, nil
		}
	}

	return filters, nil
}

// filterChannels applies filters[ch] to channelData[ch].
func filterChannels(filters []channelFilter, channelData [][]float64, parallel bool) ([][]float64, error) {
	out := make([][]float64, len(channelData))
	errs := make([]error, len(channelData))

	run := func(ch int) {
		y, err := filters[ch](channelData[ch])
		if err != nil {
			errs[ch] = fmt.Errorf("filtering failed on channel %d: %w", ch, err)
			return
		}
		out[ch] = y
	}

	if parallel && len(channelData) > 1 {
		var wg sync.WaitGroup
		for ch := range channelData {
			wg.Go(func() { run(ch) })
		}
		wg.Wait()
	} else {
		for ch := range channelData {
			run(ch)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return out, nil
}

// filterWAV reads inputPath, runs the chain and writes outputPath with the
// input's format.
func filterWAV(inputPath, outputPath string, chain *specfile.File, blockSize int, parallel, verbose bool) (*filterStats, error) {
	in, err := readWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}

	if chain.SampleRate > 0 && int(chain.SampleRate) != in.rate {
		return nil, fmt.Errorf("chain is designed for %g Hz, input is %d Hz", chain.SampleRate, in.rate)
	}

	specs, err := chain.Specs(float64(in.rate))
	if err != nil {
		return nil, err
	}

	if verbose {
		for i, s := range specs {
			log.Printf("Stage %d: %s", i, s)
		}
	}

	filters, err := newChannelFilters(specs, chain.Mode, in.channels, blockSize)
	if err != nil {
		return nil, err
	}

	channelData := deinterleave(in.data, in.channels, in.bitDepth)
	filtered, err := filterChannels(filters, channelData, parallel)
	if err != nil {
		return nil, err
	}

	data, clipped := interleave(filtered, in.bitDepth)
	if err := writeWAVOutput(outputPath, in.rate, in.bitDepth, in.channels, data); err != nil {
		return nil, err
	}

	samples := 0
	if len(filtered) > 0 {
		samples = len(filtered[0])
	}

	return &filterStats{
		sampleRate: in.rate,
		channels:   in.channels,
		bitDepth:   in.bitDepth,
		samples:    samples,
		clipped:    clipped,
	}, nil
}
