package config

type ArenaConfig struct {
	// RegionSize is the requested region size in bytes, before page rounding.
	RegionSize int
	// PageSize overrides the host page granularity when positive.
	PageSize int
}

func NewArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		RegionSize: 1024 * 1024,
	}
}
