package host

import (
	"errors"
	"reflect"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/ai-image-generator/internal/plugin"
)

type fakeStopper struct{ stopped int }

func (s *fakeStopper) Stop() { s.stopped++ }

type fakeHook struct {
	callbacks map[string]func()
	stoppers  map[string]*fakeStopper
	err       error
}

func newFakeHook() *fakeHook {
	return &fakeHook{callbacks: map[string]func(){}, stoppers: map[string]*fakeStopper{}}
}

func (h *fakeHook) listen(combo string, callback func()) (Stopper, error) {
	if h.err != nil {
		return nil, h.err
	}
	h.callbacks[combo] = callback
	s := &fakeStopper{}
	h.stoppers[combo] = s
	return s, nil
}

func newTestDesktop(t *testing.T, hook *fakeHook) *Desktop {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := app.NewWindow("test")

	return NewDesktop(app, window, "Tools",
		WithListen(hook.listen),
		WithDispatch(func(fn func()) { fn() }),
	)
}

func TestDesktop_ImplementsHost(t *testing.T) {
	var _ plugin.Host = (*Desktop)(nil)
}

func TestDesktop_MenuItems(t *testing.T) {
	d := newTestDesktop(t, newFakeHook())

	clicked := 0
	first, err := d.AddMenuItem("AI Image Generator", "Opens the generator", func() { clicked++ })
	if err != nil {
		t.Fatalf("AddMenuItem failed: %v", err)
	}
	second, err := d.AddMenuItem("Second", "", func() {})
	if err != nil {
		t.Fatalf("AddMenuItem failed: %v", err)
	}
	if first == second {
		t.Error("Expected unique menu item IDs")
	}

	if labels := d.MenuItems(); !reflect.DeepEqual(labels, []string{"AI Image Generator", "Second"}) {
		t.Errorf("Unexpected menu items %v", labels)
	}

	menu := d.window.MainMenu()
	if menu == nil || len(menu.Items) != 1 || menu.Items[0].Label != "Tools" {
		t.Fatalf("Expected a Tools main menu, got %+v", menu)
	}
	items := menu.Items[0].Items
	if len(items) != 2 {
		t.Fatalf("Expected 2 items in Tools, got %d", len(items))
	}
	items[0].Action()
	if clicked != 1 {
		t.Error("Expected menu action to run")
	}

	if err := d.RemoveMenuItem(first); err != nil {
		t.Fatalf("RemoveMenuItem failed: %v", err)
	}
	if labels := d.MenuItems(); !reflect.DeepEqual(labels, []string{"Second"}) {
		t.Errorf("Unexpected menu items after removal %v", labels)
	}

	if err := d.RemoveMenuItem(first); err == nil {
		t.Error("Expected error removing an unknown item")
	}

	d.RemoveMenuItem(second)
	if d.window.MainMenu() != nil {
		t.Error("Expected main menu to be removed with the last item")
	}
}

func TestDesktop_AddMenuItemEmptyLabel(t *testing.T) {
	d := newTestDesktop(t, newFakeHook())
	if _, err := d.AddMenuItem("", "", func() {}); err == nil {
		t.Error("Expected error for empty label")
	}
}

func TestDesktop_Shortcuts(t *testing.T) {
	hook := newFakeHook()
	d := newTestDesktop(t, hook)

	fired := 0
	if err := d.RegisterShortcut("Ctrl+Shift+A", func() { fired++ }); err != nil {
		t.Fatalf("RegisterShortcut failed: %v", err)
	}
	if err := d.RegisterShortcut("Ctrl+Shift+A", func() {}); err == nil {
		t.Error("Expected duplicate registration to fail")
	}

	hook.callbacks["Ctrl+Shift+A"]()
	if fired != 1 {
		t.Errorf("Expected shortcut action to run once, got %d", fired)
	}

	if err := d.UnregisterShortcut("Ctrl+Shift+A"); err != nil {
		t.Fatalf("UnregisterShortcut failed: %v", err)
	}
	if hook.stoppers["Ctrl+Shift+A"].stopped != 1 {
		t.Error("Expected listener to be stopped")
	}
	if err := d.UnregisterShortcut("Ctrl+Shift+A"); err == nil {
		t.Error("Expected error unregistering twice")
	}
}

func TestDesktop_ShortcutListenError(t *testing.T) {
	hook := newFakeHook()
	hook.err = errors.New("no hook")
	d := newTestDesktop(t, hook)

	if err := d.RegisterShortcut("Ctrl+Shift+A", func() {}); err == nil {
		t.Error("Expected listen error to be returned")
	}

	// A failed registration leaves the combination free
	hook.err = nil
	if err := d.RegisterShortcut("Ctrl+Shift+A", func() {}); err != nil {
		t.Errorf("Expected retry to succeed, got %v", err)
	}
}

func TestDesktop_Announce(t *testing.T) {
	d := newTestDesktop(t, newFakeHook())

	// No sink is fine
	d.Announce("hello")

	var got []string
	d.SetStatusSink(func(message string) { got = append(got, message) })
	d.Announce("Input cleared.")

	if !reflect.DeepEqual(got, []string{"Input cleared."}) {
		t.Errorf("Unexpected sink messages %v", got)
	}
}

func TestDesktop_WithPlugin(t *testing.T) {
	hook := newFakeHook()
	d := newTestDesktop(t, hook)

	opened := 0
	p := plugin.New(d, plugin.Config{MenuLabel: "AI Image Generator", Open: func() { opened++ }})
	if err := p.Register(); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	hook.callbacks[plugin.DefaultShortcut]()
	if opened != 1 {
		t.Errorf("Expected shortcut to open the generator, got %d", opened)
	}

	p.Terminate()
	if len(d.MenuItems()) != 0 {
		t.Error("Expected menu item to be removed on terminate")
	}
	if hook.stoppers[plugin.DefaultShortcut].stopped != 1 {
		t.Error("Expected shortcut to be released on terminate")
	}
}
