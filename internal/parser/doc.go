// Package parser turns one textual command block, read from a
// lineio.Reader, into a command.Record.
package parser
