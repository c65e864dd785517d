package termlog

import (
	"errors"
	"fmt"

	xansi "github.com/charmbracelet/x/ansi"
)

// OpenPhase opens an exclusive phase labelled label. If another
// phase is open on the Logger it is closed first, so its end delimiter always
// precedes the new phase's start delimiter.
//
// Example:
//
//	logger.OpenPhase("fetch")
//	...
//	logger.OpenPhase("build") // closes "fetch"
func (l *Logger) OpenPhase(label string) *Phase {
	p := &Phase{
		owner: l,
		label: label,
		width: xansi.StringWidth(label),
	}

	l.phaseMu.Lock()
	defer l.phaseMu.Unlock()

	if prev := l.active; prev != nil && !prev.closed {
		prev.err = errors.Join(prev.err, prev.closeLocked())
	}
	l.active = p
	p.err = l.startDelimiter(label, Bars)
	return p
}

// OpenPhasef opens an exclusive phase labelled with the formatted text.
func (l *Logger) OpenPhasef(format string, args ...any) *Phase {
	return l.OpenPhase(fmt.Sprintf(format, args...))
}

// Close draws the phase's end delimiter and frees the active slot if the phase
// still holds it. Closing an already closed phase, including one evicted by a
// newer phase, is a no-op. Close is safe to defer after a manual call.
//
// The returned error joins any write failure recorded for this phase.
func (p *Phase) Close() error {
	l := p.owner
	l.phaseMu.Lock()
	defer l.phaseMu.Unlock()

	if !p.closed {
		p.err = errors.Join(p.err, p.closeLocked())
	}
	if l.active == p {
		l.active = nil
	}
	err := p.err
	p.err = nil
	return err
}

// closeLocked writes the end delimiter and marks the phase closed.
// The caller must hold owner.phaseMu.
func (p *Phase) closeLocked() error {
	err := p.owner.endDelimiter("", Bars+p.width)
	p.closed = true
	return err
}

// IsActive reports whether the phase is open and occupies the Logger's active slot.
func (p *Phase) IsActive() bool {
	l := p.owner
	l.phaseMu.Lock()
	defer l.phaseMu.Unlock()
	return l.active == p && !p.closed
}

// Text returns the phase's label.
func (p *Phase) Text() string {
	return p.label
}

// ActivePhase returns the currently open phase, or nil when none is open.
func (l *Logger) ActivePhase() *Phase {
	l.phaseMu.Lock()
	defer l.phaseMu.Unlock()
	if l.active != nil && !l.active.closed {
		return l.active
	}
	return nil
}

// WithPhase opens a phase labelled label, runs fn and closes the phase on every
// exit path. If fn opens another phase, that phase evicts this one and the
// deferred close writes nothing.
func (l *Logger) WithPhase(label string, fn func() error) (err error) {
	p := l.OpenPhase(label)
	defer func() {
		err = errors.Join(err, p.Close())
	}()
	return fn()
}

// OpenPhase opens an exclusive phase on the package-level Default logger.
func OpenPhase(label string) *Phase {
	return Default.OpenPhase(label)
}

// OpenPhasef opens an exclusive phase with a formatted label on the package-level Default logger.
func OpenPhasef(format string, args ...any) *Phase {
	return Default.OpenPhasef(format, args...)
}

// WithPhase runs fn inside an exclusive phase on the package-level Default logger.
func WithPhase(label string, fn func() error) error {
	return Default.WithPhase(label, fn)
}
