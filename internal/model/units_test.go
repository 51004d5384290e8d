package model

import (
	"math"
	"testing"
)

func TestSnapToSixteenth(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{100, 100},
		{83.3333333, 83.3125},
		{1.03125, 1.0625}, // exactly half a sixteenth rounds up
		{66.66666, 66.6875},
		{0, 0},
	}
	for _, tt := range tests {
		if got := SnapToSixteenth(tt.in); got != tt.want {
			t.Errorf("SnapToSixteenth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatLength(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{96, `96"`},
		{96.1875, `96 3/16"`},
		{0.75, `3/4"`},
		{25.875, `25 7/8"`},
		{-1.5, `-1 1/2"`},
		{119.99999, `120"`},
		{math.NaN(), `NaN"`},
		{math.Inf(1), `+Inf"`},
	}
	for _, tt := range tests {
		if got := FormatLength(tt.in); got != tt.want {
			t.Errorf("FormatLength(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"96", 96},
		{"96.5", 96.5},
		{"96 3/16", 96.1875},
		{"96-3/16", 96.1875},
		{`96 3/16"`, 96.1875},
		{"3/4", 0.75},
		{"8'", 96},
		{`8' 3 1/2"`, 99.5},
		{"8ft 4in", 100},
		{"  120  ", 120},
		{"-5", -5},
	}
	for _, tt := range tests {
		got, err := ParseLength(tt.in)
		if err != nil {
			t.Errorf("ParseLength(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLength(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLengthErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "3/0", "1 2 3", "x'"} {
		if _, err := ParseLength(in); err == nil {
			t.Errorf("ParseLength(%q) expected error", in)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, v := range []float64{1.0625, 48.5, 96.1875, 143.9375} {
		got, err := ParseLength(FormatLength(v))
		if err != nil {
			t.Fatalf("round trip of %v failed: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip of %v gave %v", v, got)
		}
	}
}
