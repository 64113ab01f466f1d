// Package arena implements a first-fit memory allocator over a single
// fixed-size region reserved once from the OS. Blocks form an address-ordered
// singly linked list that exactly tiles the region; adjacent free blocks are
// merged immediately on every Free, so no two neighbours are ever both free.
// An Arena is not safe for concurrent use.
package arena

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"

	"go-mem/pkg/mem"
	"go-mem/util/helpers"
)

func Open(size int, opts *Options) (*Arena, error) {
	if opts == nil {
		opts = &Options{}
	}

	a := &Arena{pageSize: opts.PageSize}
	return a, a.Init(size)
}

// Arena owns one contiguous region and the block list laid out inside it.
// The head block always starts at offset 0; every address handed out or
// accepted by Alloc/Free is a payload offset into the region.
type Arena struct {
	mem      mmap.MMap
	pageSize int
}

// Init reserves the backing region rounded up to the page granularity and
// installs a single free block spanning it. It can succeed only once per
// arena; the region is never resized or released afterwards.
func (a *Arena) Init(size int) error {
	if a.mem != nil {
		return ErrAlreadyInitialized
	}
	if size <= 0 {
		return ErrInvalidSize
	}
	if a.pageSize <= 0 {
		a.pageSize = os.Getpagesize()
	}

	region, err := mem.Reserve(helpers.RoundUp(size, a.pageSize))
	if err != nil {
		return errors.Wrap(err, "failed to reserve region")
	}

	a.mem = region
	a.writeHeader(0, &blockHeader{
		next: nilBlock,
		size: int32(len(region) - headerSize),
		free: true,
	})
	return nil
}

// Size returns the rounded-up region size, 0 before Init.
func (a *Arena) Size() int {
	return len(a.mem)
}

// Alloc carves size bytes out of the first free block, in address order,
// large enough to hold them. The requested size is rounded up to a multiple
// of 4. The returned offset points at the payload, never at the header.
func (a *Arena) Alloc(size int) (int, error) {
	if a.mem == nil {
		return 0, ErrNotInitialized
	}
	if size <= 0 {
		return 0, ErrInvalidSize
	}

	rounded := helpers.RoundUp(size, payloadAlign)
	needed := rounded + headerSize

	off := 0
	for {
		h := a.readHeader(off)
		if h.free && int(h.size) >= needed {
			// split only when the remainder can host a block with a
			// non-zero payload; otherwise the whole block is handed
			// out and the leftover stays as internal padding
			if int(h.size)-needed >= headerSize+payloadAlign {
				newOff := off + needed
				a.writeHeader(newOff, &blockHeader{
					next: h.next,
					size: h.size - int32(needed),
					free: true,
				})
				h.next = uint32(newOff)
				h.size = int32(rounded)
			}
			h.free = false
			a.writeHeader(off, h)
			return off + headerSize, nil
		}

		if h.next == nilBlock {
			return 0, ErrOutOfMemory
		}
		off = int(h.next)
	}
}

// Free releases the block whose payload starts at addr and merges it with
// its free neighbours on both sides. The only validation available is the
// busy flag recovered from the header, so a foreign in-range address and a
// double free are indistinguishable: both fail with ErrNotAllocated.
func (a *Arena) Free(addr int) error {
	if a.mem == nil {
		return ErrNotInitialized
	}
	if addr <= 0 {
		return ErrNilPointer
	}
	if addr < headerSize || addr >= len(a.mem) {
		return ErrInvalidPointer
	}

	off := addr - headerSize
	h := a.readHeader(off)
	if h.free {
		return ErrNotAllocated
	}

	// the list holds no back links; locate the predecessor by walking from
	// the head before any header is touched
	prevOff := -1
	if off != 0 {
		prevOff = 0
		for {
			prev := a.readHeader(prevOff)
			if int(prev.next) == off {
				break
			}
			if prev.next == nilBlock || int(prev.next) > off {
				return ErrInvalidPointer
			}
			prevOff = int(prev.next)
		}
	}

	h.free = true

	if h.next != nilBlock {
		next := a.readHeader(int(h.next))
		if next.free {
			h.size += next.size + headerSize
			h.next = next.next
		}
	}

	if prevOff >= 0 {
		prev := a.readHeader(prevOff)
		if prev.free {
			prev.size += h.size + headerSize
			prev.next = h.next
			a.writeHeader(prevOff, prev)
			return nil
		}
	}

	a.writeHeader(off, h)
	return nil
}

// Bytes returns the payload of the busy block whose payload starts at addr,
// so callers can read and write their allocation in place.
func (a *Arena) Bytes(addr int) ([]byte, error) {
	if a.mem == nil {
		return nil, ErrNotInitialized
	}
	if addr <= 0 {
		return nil, ErrNilPointer
	}
	if addr < headerSize || addr >= len(a.mem) {
		return nil, ErrInvalidPointer
	}

	h := a.readHeader(addr - headerSize)
	if h.free {
		return nil, ErrNotAllocated
	}
	if addr+int(h.size) > len(a.mem) {
		return nil, ErrInvalidPointer
	}
	return a.mem[addr : addr+int(h.size)], nil
}

func (a *Arena) readHeader(off int) *blockHeader {
	h := &blockHeader{}
	h.UnmarshalBinary(a.mem[off : off+headerSize])
	return h
}

func (a *Arena) writeHeader(off int, h *blockHeader) {
	buf, _ := h.MarshalBinary()
	copy(a.mem[off:off+headerSize], buf)
}
