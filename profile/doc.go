// Package profile provides optional runtime profiling for the pcomb
// command.
//
// Profiling is compiled in only with the "pprof" build tag, which links
// [github.com/pkg/profile] and registers the [net/http/pprof] handlers.
// Without the tag every [Profiler] is a no-op and [Modes] is empty.
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/pcomb"}
//	defer p.Start().Stop()
//
// Supported modes, when built with the tag:
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     blocking profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// Profiles are written to [Profiler.Path] as <mode>.pprof and can be
// inspected with go tool pprof:
//
//	go build -tags pprof -o pcomb .
//	./pcomb --pprof-mode cpu check big.json
//	go tool pprof -http=: pcomb ~/.cache/pcomb/pprof/cpu.pprof
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
