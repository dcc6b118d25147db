package session

// PreconditionError reports a session operation performed before the
// container was fetched. It is raised via panic because the violation is a
// programming error detectable during development, never a data-dependent
// runtime condition.
type PreconditionError struct {
	// Op is the operation that was attempted.
	Op string
}

func (e *PreconditionError) Error() string {
	return "session: " + e.Op + " called before the session was fetched"
}
