package family

import (
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/filter/zerophase"
)

// StreamingChain runs realtime filters in series; each stage's output
// feeds the next.
type StreamingChain struct {
	stages []*Streaming
}

// NewStreamingChain builds one realtime stage per spec.
func NewStreamingChain(specs ...Spec) (*StreamingChain, error) {
	c := &StreamingChain{stages: make([]*Streaming, len(specs))}

	for i, s := range specs {
		f, err := NewStreaming(s)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, s.Kind, err)
		}

		c.stages[i] = f
	}

	return c, nil
}

// Next cascades x through every stage. An empty chain passes x through.
func (c *StreamingChain) Next(x float64) float64 {
	for _, f := range c.stages {
		x = f.Next(x)
	}

	return x
}

// ProcessBlock filters buf in place through the full cascade.
func (c *StreamingChain) ProcessBlock(buf []float64) {
	for _, f := range c.stages {
		f.ProcessBlock(buf)
	}
}

// Reset returns every stage to its construction-time state.
func (c *StreamingChain) Reset() {
	for _, f := range c.stages {
		f.Reset()
	}
}

// Len returns the number of stages.
func (c *StreamingChain) Len() int {
	return len(c.stages)
}

// BatchChain applies zero-phase filters in series.
type BatchChain struct {
	stages []*Batch
}

// NewBatchChain builds one offline stage per spec; opts apply to every IIR
// stage.
func NewBatchChain(specs []Spec, opts ...zerophase.Option) (*BatchChain, error) {
	c := &BatchChain{stages: make([]*Batch, len(specs))}

	for i, s := range specs {
		f, err := NewBatch(s, opts...)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, s.Kind, err)
		}

		c.stages[i] = f
	}

	return c, nil
}

// Filter runs x through every stage and returns a new slice.
func (c *BatchChain) Filter(x []float64) ([]float64, error) {
	out := append([]float64(nil), x...)

	for i, f := range c.stages {
		y, err := f.Filter(out)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, f.spec.Kind, err)
		}

		out = y
	}

	return out, nil
}

// MinLength returns the shortest buffer every stage accepts.
func (c *BatchChain) MinLength() int {
	n := 0
	for _, f := range c.stages {
		n = max(n, f.MinLength())
	}

	return n
}

// Len returns the number of stages.
func (c *BatchChain) Len() int {
	return len(c.stages)
}
