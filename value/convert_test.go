package value

import (
	"math"
	"testing"
)

func TestNumberToString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1, "-1"},
		{1.5, "1.5"},
		{0.1, "0.1"},
		{0.000001, "0.000001"},
		{0.0000001, "1e-7"},
		{1.5e-7, "1.5e-7"},
		{123456789, "123456789"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.2345e21, "1.2345e+21"},
		{-2.5e-10, "-2.5e-10"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{5e-324, "5e-324"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{123.456, "123.456"},
		{4294967295, "4294967295"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := NumberToString(tt.in); got != tt.want {
				t.Errorf("NumberToString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringToNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"  12 ", 12},
		{"1e3", 1000},
		{"-0.5", -0.5},
		{"0x10", 16},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		if got := StringToNumber(tt.in); got != tt.want {
			t.Errorf("StringToNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, in := range []string{"abc", "1_000", "12px", "NaN", "inf"} {
		if got := StringToNumber(in); !math.IsNaN(got) {
			t.Errorf("StringToNumber(%q) = %v, want NaN", in, got)
		}
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		in   Value
		want String
	}{
		{Undefined, "undefined"},
		{Null, "null"},
		{Bool(true), "true"},
		{Number(7), "7"},
		{String("x"), "x"},
		{Box(Number(2.5)), "2.5"},
		{Box(String("boxed")), "boxed"},
	}
	for _, tt := range tests {
		got, err := ToString(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("ToString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := ToString(NewSymbol("s")); err == nil {
		t.Error("expected error converting a symbol")
	}
}

func TestArrayIndex(t *testing.T) {
	tests := []struct {
		in string
		i  uint32
		ok bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"4294967294", 4294967294, true},
		{"4294967295", 0, false},
		{"01", 0, false},
		{"-1", 0, false},
		{"1.0", 0, false},
		{"", 0, false},
		{"a", 0, false},
	}
	for _, tt := range tests {
		i, ok := ArrayIndex(tt.in)
		if i != tt.i || ok != tt.ok {
			t.Errorf("ArrayIndex(%q) = %d, %t want %d, %t", tt.in, i, ok, tt.i, tt.ok)
		}
	}
}
