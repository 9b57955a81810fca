package i

// Logger writes leveled application messages.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
