// Package present turns domain values into display strings.
//
// It is shared by the CLI, the TUI and the MCP server so that every surface
// shows the same dates, amounts and labels. Nothing here performs I/O.
package present
