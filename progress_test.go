package termlog

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressRender(t *testing.T) {
	tests := []struct {
		name    string
		current int
		want    string
	}{
		{"empty", 0, "job [>         ]   0%"},
		{"half", 5, "job [=====>    ]  50%"},
		{"full", 10, "job [==========] 100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewProgressBar(10, "job", WithBarWidth(10))
			bar.current = tt.current
			if got := bar.Render(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestProgressUpdateAndFinish(t *testing.T) {
	buf := new(bytes.Buffer)
	bar := NewProgressBar(4, "dl", WithProgressWriter(buf), WithBarWidth(4))
	bar.FillBarWith("#")
	bar.FillRemainderWith(".")

	if err := bar.Update(1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := bar.Increment(10); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if bar.Current() != 4 {
		t.Errorf("Expected Increment to cap at the total, got %d", bar.Current())
	}
	if err := bar.Finish("ok"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "\rdl [#>..]  25%" + "\rdl [####] 100%" + "\rdl [####] 100% ok" + "\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestProgressZeroTotal(t *testing.T) {
	buf := new(bytes.Buffer)
	bar := NewProgressBar(0, "none", WithProgressWriter(buf))
	if err := bar.Update(3); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected nothing for a zero total, got %q", buf.String())
	}
}

func TestProgressIsNotColored(t *testing.T) {
	buf := new(bytes.Buffer)
	bar := NewProgressBar(2, "x", WithProgressWriter(buf))
	bar.SetStatus("running")
	bar.SetDescription("y")
	bar.SetTotal(4)
	bar.SetBarWidth(-1)
	bar.Update(2)
	if strings.Contains(buf.String(), "\033") {
		t.Errorf("Expected no escape bytes, got %q", buf.String())
	}
	if !strings.HasPrefix(buf.String(), "\ry [") || !strings.HasSuffix(buf.String(), " 50% running") {
		t.Errorf("Unexpected line %q", buf.String())
	}
	if got := len(bar.Render()); got != len("y [")+50+len("]  50% running") {
		t.Errorf("Expected negative widths to be ignored, got line length %d", got)
	}
}
