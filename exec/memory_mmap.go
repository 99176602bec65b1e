//go:build (linux || darwin) && (amd64 || arm64) && !wisp_heapmem

package exec

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// mmapBacking reserves the memory's entire address range up front and commits pages as the memory grows, so growth
// never copies.
type mmapBacking struct {
	region []byte
	size   int
}

func newBacking(size, reserve uint64) backing {
	if reserve == 0 || reserve < size {
		return newHeapBacking(size)
	}

	region, err := unix.Mmap(-1, 0, int(reserve), unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return newHeapBacking(size)
	}

	b := &mmapBacking{region: region}
	if err := b.grow(int(size)); err != nil {
		unix.Munmap(region)
		return newHeapBacking(size)
	}
	runtime.SetFinalizer(b, func(b *mmapBacking) {
		unix.Munmap(b.region)
	})
	return b
}

func (b *mmapBacking) bytes() []byte {
	return b.region[:b.size:b.size]
}

func (b *mmapBacking) grow(size int) error {
	if size > b.size {
		if err := unix.Mprotect(b.region[b.size:size], unix.PROT_READ|unix.PROT_WRITE); err != nil {
			return err
		}
	}
	b.size = size
	return nil
}
