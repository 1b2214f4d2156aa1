package models

import (
	"testing"
	"time"
)

func TestCanonical(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"null", Null(), ""},
		{"int", Int(42), "42"},
		{"negative int", Int(-7), "-7"},
		{"whole float drops point", Float(1.0), "1"},
		{"float shortest form", Float(1.5), "1.5"},
		{"float no trailing zeros", Float(10.10), "10.1"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"text verbatim", Text("hello"), "hello"},
		{"datetime", DateTime(ts), "2024-03-15 09:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Canonical(); got != tt.expected {
				t.Errorf("Canonical() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"null equals null", Null(), Null(), true},
		{"null vs text", Null(), Text("x"), false},
		{"null vs empty text", Null(), Text(""), false},
		{"int equals whole float", Int(1), Float(1.0), true},
		{"int equals numeric text", Int(10), Text("10"), true},
		{"different ints", Int(1), Int(2), false},
		{"float precision differs", Float(1.5), Float(1.50000001), false},
		{"same text", Text("a"), Text("a"), true},
		{"case sensitive text", Text("a"), Text("A"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.equal {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.equal)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	if f, ok := Int(3).Number(); !ok || f != 3 {
		t.Errorf("Int(3).Number() = %v, %v", f, ok)
	}
	if f, ok := Text("2.5").Number(); !ok || f != 2.5 {
		t.Errorf("Text(2.5).Number() = %v, %v", f, ok)
	}
	if _, ok := Text("abc").Number(); ok {
		t.Error("Text(abc) should not be numeric")
	}
	if _, ok := Null().Number(); ok {
		t.Error("null should not be numeric")
	}
	if _, ok := Bool(true).Number(); ok {
		t.Error("bool should not be numeric")
	}
}
