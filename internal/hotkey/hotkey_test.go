package hotkey

import (
	"reflect"
	"testing"
)

func TestParseHotkey(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Ctrl+Shift+A", []string{"ctrl", "shift", "a"}},
		{"ctrl + alt + q", []string{"ctrl", "alt", "q"}},
		{"Win+F5", []string{"cmd", "f5"}},
		{"Control+Option+G", []string{"ctrl", "alt", "g"}},
		{"", nil},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result := parseHotkey(test.input)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("parseHotkey(%q) = %v, expected %v", test.input, result, test.expected)
			}
		})
	}
}

func TestKeyNameToRawcodes(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		goos     string
		expected []uint16
	}{
		{"windows ctrl", "ctrl", "windows", []uint16{162, 163}},
		{"windows letter", "a", "windows", []uint16{65}},
		{"windows z", "z", "windows", []uint16{90}},
		{"windows digit", "7", "windows", []uint16{55}},
		{"windows f1", "f1", "windows", []uint16{112}},
		{"windows f12", "f12", "windows", []uint16{123}},
		{"linux shift", "shift", "linux", []uint16{0xffe1, 0xffe2}},
		{"linux letter", "a", "linux", []uint16{'a', 'A'}},
		{"linux f1", "f1", "linux", []uint16{0xffbe}},
		{"darwin cmd", "cmd", "darwin", []uint16{55, 54}},
		{"darwin a", "a", "darwin", []uint16{0}},
		{"darwin f1", "f1", "darwin", []uint16{122}},
		{"unknown key", "banana", "windows", nil},
		{"f13 unsupported", "f13", "windows", nil},
		{"f01 unsupported", "f01", "windows", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := keyNameToRawcodes(test.key, test.goos)
			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("keyNameToRawcodes(%q, %s) = %v, expected %v", test.key, test.goos, result, test.expected)
			}
		})
	}
}

func TestParseCombo_Errors(t *testing.T) {
	if _, err := parseComboFor("", "windows"); err == nil {
		t.Error("Expected error for empty hotkey")
	}
	if _, err := parseComboFor("Ctrl+Banana", "windows"); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestCombo_PressRelease(t *testing.T) {
	combo, err := parseComboFor("Ctrl+Shift+A", "windows")
	if err != nil {
		t.Fatalf("parseComboFor failed: %v", err)
	}
	if combo.String() != "Ctrl+Shift+A" {
		t.Errorf("Unexpected String() %q", combo.String())
	}

	if combo.Press(162) {
		t.Error("Ctrl alone must not fire")
	}
	if combo.Press(161) {
		t.Error("Ctrl+Shift must not fire")
	}
	if !combo.Press(65) {
		t.Error("Ctrl+Shift+A must fire")
	}

	// State resets after firing
	if combo.Press(65) {
		t.Error("A alone after reset must not fire")
	}

	// A released key breaks the combination
	combo.Release(65)
	combo.Press(163)
	combo.Release(163)
	combo.Press(160)
	if combo.Press(65) {
		t.Error("Combination with released Ctrl must not fire")
	}

	// Unrelated keys are ignored
	combo.Release(65)
	combo.Release(160)
	combo.Press(162)
	combo.Press(999)
	combo.Press(160)
	if !combo.Press(65) {
		t.Error("Expected combination to fire with unrelated key pressed")
	}
}
