// Package ui provides terminal output helpers shared by the invite commands
// and the full-screen invitation.
//
// # Components Overview
//
//	Spinner        - Animated status line for line-mode commands
//	SpinnerFrames  - Shared frames for the Bubble Tea spinner
//	Progress bars  - Single-color and gradient block bars
//	Tables         - Non-interactive Bubbles tables for CLI output
//
// # Color Scheme
//
// Status colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Confirmations
//	ColorError     (red)    - Failures
//	ColorWarning   (yellow) - Consistency warnings
//	ColorInfo      (cyan)   - Links
//	ColorMuted     (gray)   - Secondary text, timing info
//
// The heating bar uses TemperatureGradient, blended through go-colorful.
// Use DisableColors() to switch to monochrome output (for --no-color flag).
//
// # Progress Bars
//
//	ui.RenderProgressBar(67.5, 20, ui.ColorInfo)           // [█████████████░░░░░░░]  68%
//	ui.RenderGradientBar(40, 20, ui.TemperatureGradient)   // ████████░░░░░░░░░░░░
package ui
