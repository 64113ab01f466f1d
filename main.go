package main

import (
	"os"

	"go-mem/config"
	"go-mem/pkg/arena"
	"go-mem/util/logger"
)

func main() {
	configs := config.New()

	a, err := arena.Open(configs.Arena.RegionSize, &arena.Options{
		PageSize: configs.Arena.PageSize,
	})
	if err != nil {
		fatal(err)
	}
	logger.L.Infof("arena ready, region size %v", a.Size())

	addrs := make([]int, 0, 4)
	for _, size := range []int{100, 250, 1000, 16} {
		addr, err := a.Alloc(size)
		if err != nil {
			fatal(err)
		}
		logger.L.Debugf("allocated %v bytes at 0x%08x", size, addr)
		addrs = append(addrs, addr)
	}

	buf, err := a.Bytes(addrs[0])
	if err != nil {
		fatal(err)
	}
	copy(buf, "written through the arena")

	if err := a.Free(addrs[1]); err != nil {
		fatal(err)
	}
	if err := a.Free(addrs[2]); err != nil {
		fatal(err)
	}

	if err := a.Dump(os.Stdout); err != nil {
		fatal(err)
	}

	stats := a.Stats()
	logger.L.Infof("busy %v, free %v, total %v", stats.Busy, stats.Free, stats.Total)
}

func fatal(val interface{}) {
	logger.L.Error(val)
	os.Exit(1)
}
