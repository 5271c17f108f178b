package emitter

import (
	"strings"
	"sync"
)

// Collector is an io.Writer that records emitted warning text, splitting it
// into lines. Useful as an emitter target in tests and tooling.
type Collector struct {
	mu  sync.Mutex
	buf strings.Builder
}

// NewCollector creates a new, empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Write records p.
func (c *Collector) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// String returns everything written so far.
func (c *Collector) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Lines returns the recorded text split into non-empty lines.
func (c *Collector) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var lines []string
	for _, line := range strings.Split(c.buf.String(), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Reset discards everything recorded so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
}
