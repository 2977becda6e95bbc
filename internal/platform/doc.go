// Package platform contains OS integration glue: well-known user directories,
// directory creation and revealing or opening saved images in the desktop shell.
package platform
