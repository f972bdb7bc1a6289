package computer

// A FileGenerator allocates fresh output file paths for spilled data. Each
// call returns a unique path, tagged with the category of data (vertex, edge
// or message) that will be written to it.
type FileGenerator interface {
	NextPath(fileType string) string
}
