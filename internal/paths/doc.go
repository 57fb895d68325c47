// Package paths provides cross-platform path resolution for kvcheck's own
// settings directory.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG conventions
// (~/.config).
//
//	paths.AppConfigDir() // ~/.config/kvcheck/
//
// Schema paths read from settings may start with "~"; [ExpandHome] resolves
// them against the user's home directory.
package paths
