// Package ui contains the Fyne windows of the image generator: the launcher
// that hosts the Tools menu, the prompt window, and the progress, result,
// about and settings dialogs. Windows talk to a session.Controller and never
// to the worker directly; all strings come from i18n.Localization.
package ui
