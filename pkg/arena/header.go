package arena

import "encoding/binary"

var bin = binary.BigEndian

// headerSize is the number of bytes every block header occupies in the region.
const headerSize = 8

// payloadAlign is the granularity of payload sizes. Keeping sizes multiples
// of 4 leaves the lowest bit of the size word free for the busy flag.
const payloadAlign = 4

// nilBlock marks the absence of a next block (the highest-addressed block).
const nilBlock = ^uint32(0)

// blockHeader is the typed view of the header bytes stored at the start of
// every block. On the wire the busy flag is packed into the lowest bit of the
// size word; in memory size and free are kept as separate fields.
type blockHeader struct {
	next uint32 // region offset of the next block header, nilBlock if none
	size int32  // payload size in bytes, always a multiple of 4
	free bool
}

func (h *blockHeader) MarshalBinary() ([]byte, error) {
	buf := make([]byte, headerSize)
	bin.PutUint32(buf[0:4], h.next)
	status := uint32(h.size)
	if !h.free {
		status |= 1
	}
	bin.PutUint32(buf[4:8], status)
	return buf, nil
}

func (h *blockHeader) UnmarshalBinary(d []byte) error {
	h.next = bin.Uint32(d[0:4])
	status := bin.Uint32(d[4:8])
	h.free = status&1 == 0
	h.size = int32(status &^ 1)
	return nil
}
