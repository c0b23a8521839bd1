package types

import "bytes"

// Resource is a handle passed across the discipline boundary. It is either
// a named file on disk or an in-memory buffer; the discipline reads its
// input resource and writes its output resource through the same handle.
type Resource struct {
	Path   string
	Buffer *bytes.Buffer
}

// FileResource points at a file on disk.
func FileResource(path string) *Resource {
	return &Resource{Path: path}
}

// BufferResource holds the document in memory.
func BufferResource() *Resource {
	return &Resource{Buffer: &bytes.Buffer{}}
}

// InMemory reports whether the resource is buffer-backed.
func (r *Resource) InMemory() bool {
	return r != nil && r.Buffer != nil
}
