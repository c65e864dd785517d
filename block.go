package termlog

import (
	"errors"
	"fmt"

	xansi "github.com/charmbracelet/x/ansi"
)

// OpenBlock opens a nested block labelled label and draws its
// start delimiter. The delimiter is Bars+2*depth wide, where depth is the number
// of blocks already open on this Logger.
//
// Blocks must be closed in the reverse order they were opened. The depth counter
// is shared by every goroutine using the Logger, so closing out of order skews
// the widths of every later block; this is not detected.
//
// Example:
//
//	b := logger.OpenBlock("migrate")
//	defer b.Close()
func (l *Logger) OpenBlock(label string) *Block {
	depth := int(l.depth.Add(1) - 1)
	b := &Block{
		owner: l,
		label: label,
		depth: depth,
		width: xansi.StringWidth(label),
	}
	b.err = l.startDelimiter(label, Bars+depth*2)
	return b
}

// OpenBlockf opens a nested block labelled with the formatted text.
func (l *Logger) OpenBlockf(format string, args ...any) *Block {
	return l.OpenBlock(fmt.Sprintf(format, args...))
}

// Close draws the end delimiter and releases the block's depth level.
// The end delimiter is widened by the label's display width so that it lines up
// with the start delimiter. Calling Close more than once is a no-op.
//
// The returned error joins any write failure from the start and end delimiters.
func (b *Block) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	err := b.owner.endDelimiter("", Bars+b.depth*2+b.width)
	b.owner.releaseDepth()
	return errors.Join(b.err, err)
}

// Label returns the block's label.
func (b *Block) Label() string {
	return b.label
}

// Depth returns the nesting depth the block was opened at, starting from zero.
func (b *Block) Depth() int {
	return b.depth
}

// releaseDepth decrements the depth counter without letting it go negative.
func (l *Logger) releaseDepth() {
	for {
		cur := l.depth.Load()
		if cur <= 0 {
			return
		}
		if l.depth.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// BlockDepth reports how many blocks are currently open on the Logger.
func (l *Logger) BlockDepth() int {
	return int(l.depth.Load())
}

// WithBlock opens a block labelled label, runs fn and closes the block on every
// exit path, including a panic in fn.
func (l *Logger) WithBlock(label string, fn func() error) (err error) {
	b := l.OpenBlock(label)
	defer func() {
		err = errors.Join(err, b.Close())
	}()
	return fn()
}

// OpenBlock opens a nested block on the package-level Default logger.
func OpenBlock(label string) *Block {
	return Default.OpenBlock(label)
}

// OpenBlockf opens a nested block with a formatted label on the package-level Default logger.
func OpenBlockf(format string, args ...any) *Block {
	return Default.OpenBlockf(format, args...)
}

// WithBlock runs fn inside a nested block on the package-level Default logger.
func WithBlock(label string, fn func() error) error {
	return Default.WithBlock(label, fn)
}
