package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/ai-image-generator/internal/clipboard"
	"github.com/ytget/ai-image-generator/internal/config"
	"github.com/ytget/ai-image-generator/internal/generate"
	"github.com/ytget/ai-image-generator/internal/host"
	"github.com/ytget/ai-image-generator/internal/i18n"
	"github.com/ytget/ai-image-generator/internal/logutil"
	"github.com/ytget/ai-image-generator/internal/platform"
	"github.com/ytget/ai-image-generator/internal/plugin"
	"github.com/ytget/ai-image-generator/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logDir, err := platform.ExecutableDir()
	if err != nil {
		logDir = ""
	}
	logCloser := logutil.Setup(cfg.FileLoggingEnabled(), logDir)
	defer logCloser.Close()

	log.Printf("AI Image Generator v%s starting, endpoint %s model %s", version, cfg.API.URL, cfg.API.Model)

	fyneApp := app.NewWithID(ui.AppID)

	settings := config.NewSettings(fyneApp)
	localization := i18n.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	copyImage := clipboard.WriteImage
	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable, copying disabled: %v", err)
		copyImage = nil
	}

	client := generate.NewClient(generate.ClientConfig{
		BaseURL: cfg.API.URL,
		Model:   cfg.API.Model,
		Enhance: cfg.EnhanceEnabled(),
		NoLogo:  cfg.NoLogoEnabled(),
		Timeout: cfg.Timeout(),
	})

	launcher := ui.NewLauncher(fyneApp, ui.Options{
		Config:       cfg,
		Generator:    client,
		Settings:     settings,
		Localization: localization,
		CopyImage:    copyImage,
	})

	desk := host.NewDesktop(fyneApp, launcher.Window(), localization.GetText(i18n.KeyToolsMenu))
	desk.SetStatusSink(launcher.SetStatus)
	launcher.SetAnnouncer(desk)

	addon := plugin.New(desk, plugin.Config{
		MenuLabel: localization.GetText(i18n.KeyMenuItem),
		MenuHint:  localization.GetText(i18n.KeyMenuItemHint),
		Shortcut:  cfg.UI.Hotkey,
		Open:      launcher.OpenGenerator,
	})
	if err := addon.Register(); err != nil {
		log.Printf("Plugin registration incomplete: %v", err)
		launcher.SetStatus(localization.Format(i18n.KeyHotkeyUnavailable, cfg.UI.Hotkey, err.Error()))
	}

	launcher.SetOnQuit(addon.Terminate)
	launcher.Show()
	fyneApp.Run()

	log.Printf("AI Image Generator stopped")
}
