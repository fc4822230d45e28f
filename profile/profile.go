package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`

// Stopper stops a running profiler.
type Stopper interface{ Stop() }

// Profiler configures a profiling session.
type Profiler struct {
	// Mode is one of [Modes]. An empty or unknown mode disables profiling.
	Mode string
	// Path is the output directory. If empty, a temporary directory is used.
	Path string
	// Quiet suppresses the profiler's own log messages.
	Quiet bool
}

// Start starts profiling and returns a [Stopper] that ends it.
// Both Start and Stop are always safely callable.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
