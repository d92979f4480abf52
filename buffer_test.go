package guidraw_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/go-theft-auto/guidraw"
)

func TestFixedBufferFull(t *testing.T) {
	mem := make([]byte, 8)
	b := guidraw.NewFixedBuffer(mem)

	if _, err := b.Write([]byte{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	n, err := b.Write([]byte{6, 7, 8, 9})
	if !errors.Is(err, guidraw.ErrBufferFull) {
		t.Fatalf("expected ErrBufferFull, got %v", err)
	}
	if n != 0 {
		t.Errorf("expected nothing written, got %d bytes", n)
	}
	if b.Len() != 5 {
		t.Errorf("failed write changed length to %d", b.Len())
	}
	if b.Cap() != 8 {
		t.Errorf("expected capacity 8, got %d", b.Cap())
	}
	if mem[0] != 1 || mem[4] != 5 || mem[5] != 0 {
		t.Errorf("unexpected memory contents %v", mem)
	}

	b.Reset()
	if _, err := b.Alloc(8); err != nil {
		t.Errorf("Alloc of full capacity after Reset: %v", err)
	}
}

func TestDynamicBufferGrows(t *testing.T) {
	b := guidraw.NewBuffer(2)
	for i := range 100 {
		if _, err := b.Write([]byte{byte(i)}); err != nil {
			t.Fatalf("Write() returned error: %v", err)
		}
	}
	if b.Len() != 100 {
		t.Errorf("expected 100 bytes, got %d", b.Len())
	}
	if b.Bytes()[99] != 99 {
		t.Errorf("expected last byte 99, got %d", b.Bytes()[99])
	}
}

func TestStagingViewsAliasStorage(t *testing.T) {
	s := guidraw.NewStaging(4, 6)

	if s.VertexCapacity() != 4 || s.IndexCapacity() != 6 {
		t.Fatalf("unexpected capacities %d/%d", s.VertexCapacity(), s.IndexCapacity())
	}

	vv := s.VertexView()
	if vv.Cap() != 4*guidraw.VertexSize {
		t.Errorf("vertex view capacity: got %d, want %d", vv.Cap(), 4*guidraw.VertexSize)
	}
	v := guidraw.Vertex{Pos: [2]float32{3, 4}, Color: guidraw.ColorRed}
	src := unsafe.Slice((*byte)(unsafe.Pointer(&v)), guidraw.VertexSize)
	if _, err := vv.Alloc(guidraw.VertexSize); err != nil {
		t.Fatal(err)
	}
	if _, err := vv.Write(src); err != nil {
		t.Fatal(err)
	}
	if got := s.Vertices()[1]; got != v {
		t.Errorf("vertex written through view: got %+v, want %+v", got, v)
	}

	iv := s.IndexView()
	if _, err := iv.Alloc(6*guidraw.IndexSize + 1); !errors.Is(err, guidraw.ErrBufferFull) {
		t.Errorf("expected ErrBufferFull past index capacity, got %v", err)
	}
}

func TestEmptyStaging(t *testing.T) {
	s := guidraw.NewStaging(0, 0)
	if s.VertexBytes() != nil || s.IndexBytes() != nil {
		t.Error("expected nil byte views for empty staging")
	}
	if _, err := s.VertexView().Alloc(1); !errors.Is(err, guidraw.ErrBufferFull) {
		t.Errorf("expected ErrBufferFull, got %v", err)
	}
}
