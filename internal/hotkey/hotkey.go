// Package hotkey listens for a system-wide key combination with gohook.
package hotkey

import (
	"fmt"
	"log"
	"runtime"
	"strings"
	"sync"

	gohook "github.com/robotn/gohook"
)

// Combo tracks the pressed state of every key in a hotkey combination
type Combo struct {
	text string

	mu   sync.Mutex
	keys []keyState
}

type keyState struct {
	name     string
	rawcodes []uint16
	pressed  bool
}

// ParseCombo builds a Combo for a string like "Ctrl+Shift+A" on the current OS
func ParseCombo(text string) (*Combo, error) {
	return parseComboFor(text, runtime.GOOS)
}

func parseComboFor(text, goos string) (*Combo, error) {
	names := parseHotkey(text)
	if len(names) == 0 {
		return nil, fmt.Errorf("empty hotkey %q", text)
	}

	c := &Combo{text: text}
	for _, name := range names {
		rawcodes := keyNameToRawcodes(name, goos)
		if len(rawcodes) == 0 {
			return nil, fmt.Errorf("cannot map key %q in hotkey %q", name, text)
		}
		c.keys = append(c.keys, keyState{name: name, rawcodes: rawcodes})
	}
	return c, nil
}

// String returns the combination as configured
func (c *Combo) String() string { return c.text }

// Press records a key-down and reports whether the full combination is now
// held. A completed combination resets, so holding the keys fires once.
func (c *Combo) Press(rawcode uint16) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mark(rawcode, true)
	for i := range c.keys {
		if !c.keys[i].pressed {
			return false
		}
	}
	for i := range c.keys {
		c.keys[i].pressed = false
	}
	return true
}

// Release records a key-up
func (c *Combo) Release(rawcode uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mark(rawcode, false)
}

func (c *Combo) mark(rawcode uint16, pressed bool) {
	for i := range c.keys {
		for _, rc := range c.keys[i].rawcodes {
			if rc == rawcode {
				c.keys[i].pressed = pressed
				break
			}
		}
	}
}

// Listener delivers combination presses from the global hook
type Listener struct {
	combo    *Combo
	callback func()

	mu      sync.Mutex
	started bool
	stopped bool
}

// Listen starts the global hook for combination and calls callback on every press.
// The callback runs on the hook goroutine.
func Listen(combination string, callback func()) (*Listener, error) {
	combo, err := ParseCombo(combination)
	if err != nil {
		return nil, err
	}

	l := &Listener{combo: combo, callback: callback}
	evChan := gohook.Start()
	if evChan == nil {
		return nil, fmt.Errorf("global hook unavailable")
	}
	l.started = true
	log.Printf("Hotkey: listening for %s", combination)

	go l.run(evChan)
	return l, nil
}

func (l *Listener) run(evChan chan gohook.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Hotkey: PANIC in hook goroutine: %v", r)
		}
	}()

	for ev := range evChan {
		switch ev.Kind {
		case gohook.KeyDown:
			if l.combo.Press(ev.Rawcode) {
				log.Printf("Hotkey: %s pressed", l.combo)
				if l.callback != nil {
					l.callback()
				}
			}
		case gohook.KeyUp:
			l.combo.Release(ev.Rawcode)
		}
	}
	log.Printf("Hotkey: event channel closed")
}

// Stop ends the global hook. Safe to call more than once.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.started || l.stopped {
		return
	}
	l.stopped = true
	gohook.End()
}

// parseHotkey converts a hotkey string like "Ctrl+Alt+q" to normalized key names
func parseHotkey(hotkeyConfig string) []string {
	var keys []string
	for _, part := range strings.Split(strings.ToLower(hotkeyConfig), "+") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			continue
		case "control":
			keys = append(keys, "ctrl")
		case "option":
			keys = append(keys, "alt")
		case "win", "cmd", "super", "meta":
			keys = append(keys, "cmd")
		default:
			keys = append(keys, part)
		}
	}
	return keys
}

// keyNameToRawcodes maps a key name to the raw codes the hook reports on goos.
// Modifiers return both the left and right variants.
func keyNameToRawcodes(keyName, goos string) []uint16 {
	switch goos {
	case "linux":
		return x11Rawcodes(keyName)
	case "darwin":
		return macRawcodes(keyName)
	default:
		return windowsRawcodes(keyName)
	}
}

// windowsRawcodes returns Windows virtual-key codes
func windowsRawcodes(keyName string) []uint16 {
	switch keyName {
	case "ctrl":
		return []uint16{162, 163} // VK_LCONTROL, VK_RCONTROL
	case "alt":
		return []uint16{164, 165} // VK_LMENU, VK_RMENU
	case "shift":
		return []uint16{160, 161} // VK_LSHIFT, VK_RSHIFT
	case "cmd":
		return []uint16{91, 92} // VK_LWIN, VK_RWIN
	}

	if ch, ok := singleChar(keyName); ok {
		switch {
		case ch >= 'a' && ch <= 'z':
			return []uint16{uint16(ch-'a') + 'A'}
		case ch >= '0' && ch <= '9':
			return []uint16{uint16(ch)}
		}
	}
	if n, ok := functionKey(keyName); ok {
		return []uint16{uint16(111 + n)} // VK_F1 = 0x70
	}
	return nil
}

// x11Rawcodes returns X11 keysyms. Letters are reported lower or upper case
// depending on Shift, so both are accepted.
func x11Rawcodes(keyName string) []uint16 {
	switch keyName {
	case "shift":
		return []uint16{0xffe1, 0xffe2}
	case "ctrl":
		return []uint16{0xffe3, 0xffe4}
	case "alt":
		return []uint16{0xffe9, 0xffea}
	case "cmd":
		return []uint16{0xffeb, 0xffec}
	}

	if ch, ok := singleChar(keyName); ok {
		switch {
		case ch >= 'a' && ch <= 'z':
			return []uint16{uint16(ch), uint16(ch-'a') + 'A'}
		case ch >= '0' && ch <= '9':
			return []uint16{uint16(ch)}
		}
	}
	if n, ok := functionKey(keyName); ok {
		return []uint16{uint16(0xffbd + n)} // XK_F1 = 0xffbe
	}
	return nil
}

// macKeyCodes are the macOS virtual key codes for letters and digits
var macKeyCodes = map[rune]uint16{
	'a': 0, 's': 1, 'd': 2, 'f': 3, 'h': 4, 'g': 5, 'z': 6, 'x': 7, 'c': 8, 'v': 9,
	'b': 11, 'q': 12, 'w': 13, 'e': 14, 'r': 15, 'y': 16, 't': 17,
	'1': 18, '2': 19, '3': 20, '4': 21, '6': 22, '5': 23, '9': 25, '7': 26, '8': 28, '0': 29,
	'o': 31, 'u': 32, 'i': 34, 'p': 35, 'l': 37, 'j': 38, 'k': 40, 'n': 45, 'm': 46,
}

var macFunctionKeys = []uint16{122, 120, 99, 118, 96, 97, 98, 100, 101, 109, 103, 111}

// macRawcodes returns macOS virtual key codes
func macRawcodes(keyName string) []uint16 {
	switch keyName {
	case "cmd":
		return []uint16{55, 54}
	case "shift":
		return []uint16{56, 60}
	case "alt":
		return []uint16{58, 61}
	case "ctrl":
		return []uint16{59, 62}
	}

	if ch, ok := singleChar(keyName); ok {
		if code, ok := macKeyCodes[ch]; ok {
			return []uint16{code}
		}
	}
	if n, ok := functionKey(keyName); ok {
		return []uint16{macFunctionKeys[n-1]}
	}
	return nil
}

func singleChar(keyName string) (rune, bool) {
	runes := []rune(keyName)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}

// functionKey parses "f1".."f12"
func functionKey(keyName string) (int, bool) {
	if !strings.HasPrefix(keyName, "f") || len(keyName) < 2 {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(keyName[1:], "%d", &n); err != nil || n < 1 || n > 12 {
		return 0, false
	}
	if fmt.Sprint(n) != keyName[1:] {
		return 0, false
	}
	return n, true
}
