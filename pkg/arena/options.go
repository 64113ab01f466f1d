package arena

type Options struct {
	// PageSize is the granularity the requested region size is rounded up
	// to. Zero or negative means the host page size (os.Getpagesize()).
	PageSize int
}
