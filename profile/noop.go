//go:build !pprof

package profile

// start is a no-op implementation used when the pprof build tag is not set.
func start(mode, path string, quiet bool) interface{ Stop() } {
	return ignore{}
}
