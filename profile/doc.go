// Package profile provides optional runtime profiling for cykscope.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag. When
// built without the tag, every operation is a no-op:
//
//	go build -tags pprof .
//	cykscope --pprof-mode cpu --pprof-dir /tmp/profiles run < cases.txt
//	go tool pprof /tmp/profiles/cpu.pprof
//
// The supported modes are listed by [Modes]: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, trace.
//
// With the tag set, the package also imports [net/http/pprof], which
// registers its handlers on [net/http.DefaultServeMux].
package profile
