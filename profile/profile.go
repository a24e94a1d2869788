package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Profiler describes a profiling session.
type Profiler struct {
	// Mode is one of [Modes]. The empty string disables profiling.
	Mode string
	// Path is the output directory for profile files.
	Path string
	// Quiet suppresses the profiler's own log output.
	Quiet bool
}

// Start begins profiling and returns a handle to stop it.
//
// If the binary was built without the pprof tag, or p.Mode is empty or
// unknown, Start returns a no-op implementation. Both Start and Stop are
// always safely callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

// Enabled reports whether profiling support was compiled in.
func Enabled() bool { return len(Modes()) > 0 }

type ignore struct{}

func (ignore) Stop() {}
