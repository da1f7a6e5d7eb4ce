package tui

// reauthMsg ends a session the server no longer accepts.
type reauthMsg struct{}
