package flash

// PreconditionError reports a flash operation performed before fetch. It
// is raised via panic: accessing the flash before the fetch pipeline ran
// is a programming error caught during development, never a recoverable
// runtime condition. Token verification failures do not take this path —
// they degrade to an empty flash.
type PreconditionError struct {
	// Op is the operation that was attempted.
	Op string
}

func (e *PreconditionError) Error() string {
	return "flash: " + e.Op + " called before the flash was fetched"
}
