package arena

import "github.com/pkg/errors"

var (
	ErrAlreadyInitialized = errors.New("arena already holds a region")
	ErrNotInitialized     = errors.New("arena is not initialized")
	ErrInvalidSize        = errors.New("requested size is not positive")
	ErrOutOfMemory        = errors.New("no free block large enough")
	ErrNilPointer         = errors.New("nil address")
	ErrInvalidPointer     = errors.New("invalid pointer")
	ErrNotAllocated       = errors.New("block is not allocated")
)
