// Package tui holds ogmi's terminal presentation: mode detection, the styled
// graph tree, the fetch spinner and the full-screen graph browser.
package tui
