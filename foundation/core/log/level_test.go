// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level parsing and filtering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14

package log

import "testing"

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"off", LevelOff, false},
		{"loud", LevelInfo, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestShouldLog(t *testing.T) {
	testCases := []struct {
		level Level
		min   Level
		want  bool
	}{
		{LevelDebug, LevelInfo, false},
		{LevelInfo, LevelInfo, true},
		{LevelError, LevelWarn, true},
		{LevelError, LevelOff, false},
		{LevelOff, LevelTrace, false},
	}

	for _, tc := range testCases {
		if got := tc.level.ShouldLog(tc.min); got != tc.want {
			t.Errorf("%v.ShouldLog(%v) = %v, want %v", tc.level, tc.min, got, tc.want)
		}
	}
}
