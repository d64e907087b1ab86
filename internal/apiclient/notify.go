package apiclient

// Severity grades a user-facing notification.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier receives the human-readable message emitted once per failed
// call. The host decides how to surface it (toast, terminal, log).
type Notifier interface {
	Notify(severity Severity, message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(severity Severity, message string)

func (f NotifierFunc) Notify(severity Severity, message string) {
	f(severity, message)
}
