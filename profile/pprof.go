//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Modes returns the supported profiling modes in sorted order.
var Modes = sync.OnceValue(func() []string {
	return slices.Sorted(maps.Keys(modes))
})

var modes = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// option appends profile options for one setting of a Profiler.
type option func([]func(*profile.Profile)) []func(*profile.Profile)

func start(p Profiler) Stopper {
	fn, ok := modes[p.Mode]
	if !ok {
		return ignore{}
	}

	opts := []func(*profile.Profile){fn, profile.NoShutdownHook}
	for _, o := range []option{withPath(p.Path), withQuiet(p.Quiet)} {
		opts = o(opts)
	}

	return profile.Start(opts...)
}

func withPath(path string) option {
	return func(opts []func(*profile.Profile)) []func(*profile.Profile) {
		if path == "" {
			return opts
		}

		return append(opts, profile.ProfilePath(path))
	}
}

func withQuiet(quiet bool) option {
	return func(opts []func(*profile.Profile)) []func(*profile.Profile) {
		if !quiet {
			return opts
		}

		return append(opts, profile.Quiet)
	}
}
