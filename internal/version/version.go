// ABOUTME: Build identity constants
// ABOUTME: Version information reported in logs and the TUI
package version

const (
	Version      = "0.3.0"
	Product      = "Linx Player"
	Manufacturer = "Linx Audio"
)
