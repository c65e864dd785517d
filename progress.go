package termlog

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ProgressBar renders a single-line, carriage-return-refreshed progress bar.
// It writes straight to its writer: output is not serialized with log lines,
// not severity-gated and never coloured.
type ProgressBar struct {
	writer      io.Writer
	total       int
	current     int
	width       int
	description string
	fill        string
	remainder   string
	status      string
}

// ProgressOption configures a ProgressBar during creation.
type ProgressOption func(*ProgressBar)

// WithProgressWriter sets the output destination. The default is os.Stdout.
func WithProgressWriter(w io.Writer) ProgressOption {
	return func(p *ProgressBar) {
		if w != nil {
			p.writer = w
		}
	}
}

// WithBarWidth sets the number of cells in the bar. The default is 50.
func WithBarWidth(width int) ProgressOption {
	return func(p *ProgressBar) {
		p.SetBarWidth(width)
	}
}

// NewProgressBar creates a bar counting from zero to total.
func NewProgressBar(total int, description string, opts ...ProgressOption) *ProgressBar {
	p := &ProgressBar{
		writer:      os.Stdout,
		total:       total,
		width:       50,
		description: description,
		fill:        "=",
		remainder:   " ",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetTotal sets the position that counts as 100%. While the total is zero the
// bar draws nothing.
func (p *ProgressBar) SetTotal(total int) {
	p.total = total
}

// SetDescription sets the text printed before the bar.
func (p *ProgressBar) SetDescription(desc string) {
	p.description = desc
}

// FillBarWith sets the string repeated for each completed cell.
func (p *ProgressBar) FillBarWith(chars string) {
	p.fill = chars
}

// FillRemainderWith sets the string repeated for each pending cell.
func (p *ProgressBar) FillRemainderWith(chars string) {
	p.remainder = chars
}

// SetStatus sets the text printed after the percentage.
func (p *ProgressBar) SetStatus(status string) {
	p.status = status
}

// SetBarWidth sets the number of cells in the bar; negative widths are ignored.
func (p *ProgressBar) SetBarWidth(width int) {
	if width >= 0 {
		p.width = width
	}
}

// Current returns the current position.
func (p *ProgressBar) Current() int {
	return p.current
}

// Update moves the bar to current and redraws it.
func (p *ProgressBar) Update(current int) error {
	p.current = current
	return p.write()
}

// Increment advances the bar by n, capped at the total, and redraws it.
func (p *ProgressBar) Increment(n int) error {
	p.current += n
	if p.current > p.total {
		p.current = p.total
	}
	return p.write()
}

// Finish fills the bar, sets the status and terminates the line.
func (p *ProgressBar) Finish(status string) error {
	p.status = status
	p.current = p.total
	if err := p.write(); err != nil {
		return err
	}
	_, err := io.WriteString(p.writer, "\n")
	return err
}

// Render returns the bar line without the leading carriage return.
// It returns an empty string when the total is zero.
func (p *ProgressBar) Render() string {
	if p.total == 0 {
		return ""
	}
	progress := float64(p.current) / float64(p.total)
	pos := int(progress * float64(p.width))

	var bar strings.Builder
	for i := 0; i < p.width; i++ {
		switch {
		case i < pos:
			bar.WriteString(p.fill)
		case i == pos:
			bar.WriteByte('>')
		default:
			bar.WriteString(p.remainder)
		}
	}

	status := ""
	if p.status != "" {
		status = " " + p.status
	}
	return fmt.Sprintf("%s [%s] %3.0f%%%s", p.description, bar.String(), progress*100, status)
}

func (p *ProgressBar) write() error {
	line := p.Render()
	if line == "" {
		return nil
	}
	_, err := io.WriteString(p.writer, "\r"+line)
	return err
}
