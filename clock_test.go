package termlog

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestClockElapsed(t *testing.T) {
	tests := map[TimeUnit]string{
		Seconds:      "s",
		Milliseconds: "ms",
		Microseconds: "mcs",
		Nanoseconds:  "ns",
	}
	for unit, suffix := range tests {
		buf := new(bytes.Buffer)
		clock := NewClock(New(buf, WithColors(false)))
		if err := clock.Elapsed("load", unit); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		re := regexp.MustCompile(`^\[D\] load: [0-9]+(\.[0-9]+)?` + suffix + `\n$`)
		if !re.MatchString(buf.String()) {
			t.Errorf("unit %d: unexpected line %q", unit, buf.String())
		}
	}
}

func TestClockUnknownUnit(t *testing.T) {
	buf := new(bytes.Buffer)
	clock := NewClock(New(buf))
	err := clock.Elapsed("load", TimeUnit(9))
	if !errors.Is(err, ErrUnknownTimeUnit) {
		t.Errorf("Expected ErrUnknownTimeUnit, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected nothing written, got %q", buf.String())
	}
}

func TestClockRespectsLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	clock := NewClock(New(buf, WithLevel(InfoIssuer)))
	if err := clock.Elapsed("quiet", Milliseconds); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected the debug line to be filtered, got %q", buf.String())
	}
}

func TestConvertDuration(t *testing.T) {
	d := 1500 * time.Millisecond
	checks := []struct {
		unit TimeUnit
		want float64
	}{
		{Seconds, 1.5},
		{Milliseconds, 1500},
		{Microseconds, 1500000},
		{Nanoseconds, 1500000000},
	}
	for _, c := range checks {
		got, _, err := convertDuration(d, c.unit)
		if err != nil || got != c.want {
			t.Errorf("unit %d: expected %v, got %v (%v)", c.unit, c.want, got, err)
		}
	}
}

func TestClockReset(t *testing.T) {
	clock := NewClock(New(new(bytes.Buffer)))
	clock.start = time.Now().Add(-time.Hour)
	clock.Reset()
	if clock.Since() > time.Minute {
		t.Errorf("Expected Reset to restart the clock, elapsed %v", clock.Since())
	}
}
