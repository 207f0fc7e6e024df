//go:build depot_release

package depot

func assert(bool, func() error) {}
