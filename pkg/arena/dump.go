package arena

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Stats aggregates block totals, headers included. Busy+Free equals Size().
type Stats struct {
	Busy  int
	Free  int
	Total int
}

// Stats walks the block list and sums busy and free bytes. Read-only.
func (a *Arena) Stats() Stats {
	s := Stats{}
	if a.mem == nil {
		return s
	}

	off := 0
	for {
		h := a.readHeader(off)
		total := int(h.size) + headerSize
		if h.free {
			s.Free += total
		} else {
			s.Busy += total
		}
		s.Total += total

		if h.next == nilBlock {
			return s
		}
		off = int(h.next)
	}
}

// Dump writes a table of every block in address order, followed by the busy,
// free and grand totals. It never mutates the list; offsets are printed the
// way addresses would be, in hex.
func (a *Arena) Dump(w io.Writer) error {
	if a.mem == nil {
		return ErrNotInitialized
	}

	if _, err := fmt.Fprintln(w, "No.\tStatus\tBegin\t\tEnd\t\tSize\tt_Size\tt_Begin"); err != nil {
		return errors.Wrap(err, "failed to write dump header")
	}

	busy, free := 0, 0
	off, no := 0, 1
	for {
		h := a.readHeader(off)
		status := "Free"
		total := int(h.size) + headerSize
		if h.free {
			free += total
		} else {
			status = "Busy"
			busy += total
		}

		begin := off + headerSize
		end := begin + int(h.size)
		_, err := fmt.Fprintf(w, "%d\t%s\t0x%08x\t0x%08x\t%d\t%d\t0x%08x\n",
			no, status, begin, end, h.size, total, off)
		if err != nil {
			return errors.Wrap(err, "failed to write dump row")
		}

		if h.next == nilBlock {
			break
		}
		off = int(h.next)
		no++
	}

	_, err := fmt.Fprintf(w, "Total busy size = %d\nTotal free size = %d\nTotal size = %d\n",
		busy, free, busy+free)
	return errors.Wrap(err, "failed to write dump totals")
}
