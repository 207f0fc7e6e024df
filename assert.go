//go:build !depot_release

package depot

// assert panics with the error built by fn when cond is false.
// Builds tagged depot_release skip the check entirely.
func assert(cond bool, fn func() error) {
	if !cond {
		panic(fn())
	}
}
