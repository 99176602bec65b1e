//go:build !((linux || darwin) && (amd64 || arm64)) || wisp_heapmem

package exec

func newBacking(size, reserve uint64) backing {
	return newHeapBacking(size)
}
