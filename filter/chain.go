package filter

import (
	"fmt"
	"strings"

	"github.com/gogpu/gray"
)

// Chain applies several filters in sequence.
// Intermediate results go through pooled scratch images; only the last
// filter writes to dst. Chain itself implements Filter.
type Chain struct {
	filters []Filter
}

// NewChain creates a chain from the given filters. Nil filters are skipped.
func NewChain(filters ...Filter) *Chain {
	c := &Chain{
		filters: make([]Filter, 0, len(filters)),
	}
	for _, f := range filters {
		c.Add(f)
	}
	return c
}

// Add appends a filter to the chain.
func (c *Chain) Add(f Filter) {
	if f != nil {
		c.filters = append(c.filters, f)
	}
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	return len(c.filters)
}

// Process implements Filter. An empty chain copies src into dst.
func (c *Chain) Process(src, dst *gray.Image) error {
	if err := prepare(c, src, dst); err != nil {
		return err
	}

	switch len(c.filters) {
	case 0:
		copy(dst.Pix(), src.Pix())
		return nil
	case 1:
		return c.filters[0].Process(src, dst)
	}

	current := scratch.get(src.Width(), src.Height())
	next := scratch.get(src.Width(), src.Height())
	defer scratch.put(current)
	defer scratch.put(next)

	if err := c.filters[0].Process(src, current); err != nil {
		return err
	}
	for _, f := range c.filters[1 : len(c.filters)-1] {
		if err := f.Process(current, next); err != nil {
			return err
		}
		current, next = next, current
	}
	return c.filters[len(c.filters)-1].Process(current, dst)
}

func (c *Chain) String() string {
	var b strings.Builder
	b.WriteString("chain(")
	for i, f := range c.filters {
		if i > 0 {
			b.WriteString(", ")
		}
		if s, ok := f.(fmt.Stringer); ok {
			b.WriteString(s.String())
		} else {
			b.WriteString("?")
		}
	}
	b.WriteString(")")
	return b.String()
}
