// Package host implements plugin.Host on the desktop: menu items live in the
// system tray and the window's Tools menu, shortcuts are global gohook
// combinations and announcements go to the log and a status sink.
package host

import (
	"fmt"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ytget/ai-image-generator/internal/hotkey"
	"github.com/ytget/ai-image-generator/internal/plugin"
)

// Stopper ends a shortcut registration
type Stopper interface {
	Stop()
}

// ListenFunc starts a global shortcut. hotkey.Listen in production.
type ListenFunc func(combo string, callback func()) (Stopper, error)

// Desktop is the fyne-backed host
type Desktop struct {
	app       fyne.App
	window    fyne.Window
	menuTitle string
	listen    ListenFunc
	dispatch  func(fn func())

	mu        sync.Mutex
	items     []menuEntry
	nextID    int
	shortcuts map[string]Stopper
	sink      func(message string)
}

type menuEntry struct {
	id   plugin.MenuItemID
	item *fyne.MenuItem
}

// Option customizes a Desktop host
type Option func(*Desktop)

// WithListen replaces the global shortcut backend
func WithListen(listen ListenFunc) Option {
	return func(d *Desktop) { d.listen = listen }
}

// WithDispatch replaces fyne.Do for shortcut callbacks
func WithDispatch(dispatch func(fn func())) Option {
	return func(d *Desktop) { d.dispatch = dispatch }
}

// NewDesktop creates a host around app. window may be nil when the app has no
// main window; menuTitle names the window menu holding added items.
func NewDesktop(app fyne.App, window fyne.Window, menuTitle string, opts ...Option) *Desktop {
	d := &Desktop{
		app:       app,
		window:    window,
		menuTitle: menuTitle,
		listen:    listenHotkey,
		dispatch:  fyne.Do,
		shortcuts: make(map[string]Stopper),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func listenHotkey(combo string, callback func()) (Stopper, error) {
	l, err := hotkey.Listen(combo, callback)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// SetStatusSink routes announcements to fn in addition to the log
func (d *Desktop) SetStatusSink(fn func(message string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sink = fn
}

// AddMenuItem adds an entry to the tray menu and the window's tools menu
func (d *Desktop) AddMenuItem(label, hint string, action func()) (plugin.MenuItemID, error) {
	if label == "" {
		return "", fmt.Errorf("menu item label is empty")
	}

	d.mu.Lock()
	d.nextID++
	id := plugin.MenuItemID(fmt.Sprintf("menu-%d", d.nextID))
	item := fyne.NewMenuItem(label, action)
	d.items = append(d.items, menuEntry{id: id, item: item})
	d.mu.Unlock()

	if hint != "" {
		log.Printf("Host: menu item %s %q: %s", id, label, hint)
	}
	d.rebuildMenus()
	return id, nil
}

// RemoveMenuItem removes an entry added by AddMenuItem
func (d *Desktop) RemoveMenuItem(id plugin.MenuItemID) error {
	d.mu.Lock()
	index := -1
	for i, entry := range d.items {
		if entry.id == id {
			index = i
			break
		}
	}
	if index < 0 {
		d.mu.Unlock()
		return fmt.Errorf("menu item not found: %s", id)
	}
	d.items = append(d.items[:index], d.items[index+1:]...)
	d.mu.Unlock()

	d.rebuildMenus()
	return nil
}

// MenuItems returns the labels of the installed items in order
func (d *Desktop) MenuItems() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	labels := make([]string, 0, len(d.items))
	for _, entry := range d.items {
		labels = append(labels, entry.item.Label)
	}
	return labels
}

func (d *Desktop) rebuildMenus() {
	d.mu.Lock()
	items := make([]*fyne.MenuItem, 0, len(d.items))
	for _, entry := range d.items {
		items = append(items, entry.item)
	}
	d.mu.Unlock()

	if desk, ok := d.app.(desktop.App); ok {
		desk.SetSystemTrayMenu(fyne.NewMenu(d.menuTitle, items...))
	}

	if d.window == nil {
		return
	}
	if len(items) == 0 {
		d.window.SetMainMenu(nil)
		return
	}
	d.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu(d.menuTitle, items...)))
}

// RegisterShortcut binds a global key combination. The action runs on the UI thread.
func (d *Desktop) RegisterShortcut(combo string, action func()) error {
	d.mu.Lock()
	if _, exists := d.shortcuts[combo]; exists {
		d.mu.Unlock()
		return fmt.Errorf("shortcut already registered: %s", combo)
	}
	d.mu.Unlock()

	stopper, err := d.listen(combo, func() { d.dispatch(action) })
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.shortcuts[combo] = stopper
	d.mu.Unlock()
	return nil
}

// UnregisterShortcut releases a combination bound by RegisterShortcut
func (d *Desktop) UnregisterShortcut(combo string) error {
	d.mu.Lock()
	stopper, exists := d.shortcuts[combo]
	delete(d.shortcuts, combo)
	d.mu.Unlock()

	if !exists {
		return fmt.Errorf("shortcut not registered: %s", combo)
	}
	stopper.Stop()
	return nil
}

// Announce logs the message and forwards it to the status sink
func (d *Desktop) Announce(message string) {
	log.Printf("Announce: %s", message)

	d.mu.Lock()
	sink := d.sink
	d.mu.Unlock()

	if sink != nil {
		sink(message)
	}
}
