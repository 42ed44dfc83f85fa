// Package ms provides the core mass-spectrometry data model shared by the
// algo-masspec packages: (m/z, intensity) samples and single-spectrum scans.
//
// A Scan is treated as read-only by every package in this module; detection
// and smoothing return new data instead of mutating their input.
package ms
