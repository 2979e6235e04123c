package invoice

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Numberer hands out invoice IDs and printable invoice numbers from the clock.
// Uniqueness of the printed number is best effort; the snowflake ID is unique per node.
type Numberer struct {
	node *snowflake.Node
	now  func() time.Time
}

// NumbererOption configures a Numberer.
type NumbererOption func(*Numberer)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) NumbererOption {
	return func(n *Numberer) {
		n.now = now
	}
}

// NewNumberer creates a Numberer for the given snowflake node (0..1023).
func NewNumberer(nodeID int64, opts ...NumbererOption) (*Numberer, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node %d: %w", nodeID, err)
	}
	n := &Numberer{node: node, now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// NextID returns a new time-ordered invoice ID.
func (n *Numberer) NextID() string {
	return n.node.Generate().String()
}

// NextNumber returns "INV-" followed by the last six digits of the current Unix millisecond.
func (n *Numberer) NextNumber() string {
	return FormatNumber(n.now())
}

// FormatNumber builds the invoice number for t.
func FormatNumber(t time.Time) string {
	return fmt.Sprintf("INV-%06d", t.UnixMilli()%1000000)
}
