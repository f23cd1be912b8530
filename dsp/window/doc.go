// Package window generates tapering windows and applies them to sample
// buffers ahead of spectrum analysis.
package window
