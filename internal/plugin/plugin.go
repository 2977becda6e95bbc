// Package plugin registers the generator with its host surface: a tools-menu
// entry, a global shortcut and an accessibility announcer. The host is
// injected, so the plugin keeps no package-level state.
package plugin

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// MenuItemID identifies a menu item added by AddMenuItem
type MenuItemID string

// Host is the capability surface the plugin registers with
type Host interface {
	AddMenuItem(label, hint string, action func()) (MenuItemID, error)
	RemoveMenuItem(id MenuItemID) error
	RegisterShortcut(combo string, action func()) error
	UnregisterShortcut(combo string) error
	Announce(message string)
}

// DefaultShortcut opens the generator from anywhere
const DefaultShortcut = "Ctrl+Shift+A"

// Config describes what the plugin registers
type Config struct {
	MenuLabel string
	MenuHint  string
	Shortcut  string

	// Open shows the generator window. It is called from menu and shortcut
	// activations.
	Open func()
}

// Plugin owns the menu item and shortcut registered with a Host
type Plugin struct {
	host Host
	cfg  Config

	mu         sync.Mutex
	menuID     MenuItemID
	registered bool
	shortcut   bool
}

// New creates an unregistered plugin
func New(host Host, cfg Config) *Plugin {
	if cfg.Shortcut == "" {
		cfg.Shortcut = DefaultShortcut
	}
	return &Plugin{host: host, cfg: cfg}
}

// Register adds the menu item and the global shortcut. A shortcut that cannot
// be registered is not fatal: the menu item still works and the error is
// returned for the caller to report.
func (p *Plugin) Register() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.registered {
		return nil
	}
	if p.cfg.Open == nil {
		return errors.New("plugin: no open action configured")
	}

	id, err := p.host.AddMenuItem(p.cfg.MenuLabel, p.cfg.MenuHint, p.activate)
	if err != nil {
		return fmt.Errorf("failed to add menu item: %w", err)
	}
	p.menuID = id
	p.registered = true
	log.Printf("Plugin: registered menu item %q", p.cfg.MenuLabel)

	if err := p.host.RegisterShortcut(p.cfg.Shortcut, p.activate); err != nil {
		return fmt.Errorf("failed to register shortcut %s: %w", p.cfg.Shortcut, err)
	}
	p.shortcut = true
	log.Printf("Plugin: registered shortcut %s", p.cfg.Shortcut)
	return nil
}

func (p *Plugin) activate() {
	log.Printf("Plugin: activated")
	p.cfg.Open()
}

// Terminate removes what Register added. Failures are logged, never raised,
// so shutdown always completes.
func (p *Plugin) Terminate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shortcut {
		if err := p.host.UnregisterShortcut(p.cfg.Shortcut); err != nil {
			log.Printf("warning: failed to unregister shortcut %s: %v", p.cfg.Shortcut, err)
		}
		p.shortcut = false
	}

	if p.registered {
		if err := p.host.RemoveMenuItem(p.menuID); err != nil {
			log.Printf("warning: failed to remove menu item %s: %v", p.menuID, err)
		}
		p.registered = false
		p.menuID = ""
	}
}

// Registered reports whether the menu item is currently installed
func (p *Plugin) Registered() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.registered
}

// Announce forwards a message to the host announcer
func (p *Plugin) Announce(message string) {
	p.host.Announce(message)
}
