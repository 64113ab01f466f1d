// Package mem provides the one-shot OS reservation backing an arena region.
package mem

import (
	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// Reserve maps n bytes of zero-filled, anonymous, read/write memory. The
// mapping is never unmapped; it lives for the rest of the process.
func Reserve(n int) (mmap.MMap, error) {
	if n <= 0 {
		return nil, errors.Errorf("non-positive reservation size => %v", n)
	}

	region, err := mmap.MapRegion(nil, n, mmap.RDWR, mmap.ANON, 0)
	return region, errors.Wrap(err, "failed to map anonymous region")
}
