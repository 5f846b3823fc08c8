package driven

// FileSaver persists an opaque payload under a file name chosen by the core.
type FileSaver interface {
	// Save writes data as name and returns the path it was written to.
	Save(name string, data []byte) (string, error)
}
