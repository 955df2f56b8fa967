// Package config manages the tool-side registry file.
//
// The registry stores user metadata that does not belong in the panel
// settings file itself: named panel profiles (which settings file drives
// which display, when it last validated cleanly) and application
// preferences such as the default profile and the rgbmatrix source
// checkout location.
//
// The registry lives in the platform config directory
// (~/.config/rpidisplay/config.yaml on Linux) and is written atomically.
// The panel settings files it points at are owned by the matrixcfg
// package; this package never parses them.
package config
