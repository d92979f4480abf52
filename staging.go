package guidraw

import "unsafe"

// Staging holds the host-side vertex and index regions that the GUI library
// fills every frame. Both are allocated once with exactly the requested
// element counts and never resized.
type Staging struct {
	vertices []Vertex
	indices  []uint16
}

// NewStaging allocates vertexCapacity vertices and indexCapacity indices.
func NewStaging(vertexCapacity, indexCapacity int) *Staging {
	return &Staging{
		vertices: make([]Vertex, vertexCapacity),
		indices:  make([]uint16, indexCapacity),
	}
}

// Vertices returns the typed vertex storage.
func (s *Staging) Vertices() []Vertex { return s.vertices }

// Indices returns the typed index storage.
func (s *Staging) Indices() []uint16 { return s.indices }

// VertexCapacity returns the number of vertices the staging region holds.
func (s *Staging) VertexCapacity() int { return len(s.vertices) }

// IndexCapacity returns the number of indices the staging region holds.
func (s *Staging) IndexCapacity() int { return len(s.indices) }

// VertexBytes returns the vertex storage as bytes, exactly
// VertexCapacity()*VertexSize long. The slice aliases the typed storage.
func (s *Staging) VertexBytes() []byte {
	if len(s.vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.vertices[0])), len(s.vertices)*VertexSize)
}

// IndexBytes returns the index storage as bytes, exactly
// IndexCapacity()*IndexSize long. The slice aliases the typed storage.
func (s *Staging) IndexBytes() []byte {
	if len(s.indices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.indices[0])), len(s.indices)*IndexSize)
}

// VertexView returns a fixed Buffer over the vertex storage. Writes through
// the view land in Vertices(); nothing past the capacity can be written.
func (s *Staging) VertexView() *Buffer {
	return NewFixedBuffer(s.VertexBytes())
}

// IndexView returns a fixed Buffer over the index storage.
func (s *Staging) IndexView() *Buffer {
	return NewFixedBuffer(s.IndexBytes())
}

