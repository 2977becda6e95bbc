package ui

// Window and image area sizing
const (
	InputWindowWidth  float32 = 520
	InputWindowHeight float32 = 320
	PromptMinHeight   float32 = 140

	LauncherWidth  float32 = 460
	LauncherHeight float32 = 180

	// Generated images are scaled down to fit this area, never up
	DisplayAreaWidth  = 760
	DisplayAreaHeight = 480

	SettingsWidth  float32 = 480
	SettingsHeight float32 = 320
	AboutWidth     float32 = 420
)

// External links offered by the About dialog
const (
	TelegramURL = "https://t.me/techvisionary"
	WebsiteURL  = "https://techvisionarytutorials.blogspot.com"
)

// AppID identifies the application to Fyne preferences storage
const AppID = "com.ytget.ai-image-generator"
