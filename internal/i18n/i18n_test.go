package i18n

import "testing"

func TestNewLocalization(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if text := l.GetText(KeyInputCleared); text != "Input cleared." {
		t.Errorf("Unexpected text %q", text)
	}
}

func TestSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected ru, got %s", l.GetCurrentLanguage())
	}

	// Unsupported languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language to stay ru, got %s", l.GetCurrentLanguage())
	}
}

func TestSetLanguage_System(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "pt_BR.UTF-8")

	l := NewLocalization()
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected pt from LANG, got %s", l.GetCurrentLanguage())
	}
}

func TestGetText_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if text := l.GetText("missing_key"); text != "missing_key" {
		t.Errorf("Expected key fallback, got %q", text)
	}

	// Remove one translation to exercise the English fallback
	delete(l.texts["pt"], KeyGenerated)
	if text := l.GetText(KeyGenerated); text != "Image generated successfully." {
		t.Errorf("Expected English fallback, got %q", text)
	}
}

func TestFormat(t *testing.T) {
	l := NewLocalization()

	if text := l.Format(KeyImageSavedAs, "/tmp/cat.png"); text != "Image saved as /tmp/cat.png" {
		t.Errorf("Unexpected text %q", text)
	}
	if text := l.Format(KeyHotkeyUnavailable, "Ctrl+Shift+A", "denied"); text != "Global shortcut Ctrl+Shift+A is unavailable: denied" {
		t.Errorf("Unexpected text %q", text)
	}
}

func TestTranslationsComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("Missing texts for %s", lang)
			continue
		}
		for key := range l.texts["en"] {
			if _, ok := texts[key]; !ok {
				t.Errorf("%s: missing key %s", lang, key)
			}
		}
	}
}
