// Package wren runs external commands with live output relay and a
// progress spinner. The engine lives in the exec package; cmd/wren is the CLI.
package wren

// Version is the current wren release.
const Version = "0.1.0"
