package num

import (
	"runtime"
	"strings"
)

// CPUFeature is a named capability bit reported by golang.org/x/sys/cpu.
type CPUFeature struct {
	Name    string
	Present bool
}

// HostInfo summarises the machine the pool runs on.
type HostInfo struct {
	GOOS           string
	GOARCH         string
	NumCPU         int
	GOMAXPROCS     int
	DefaultWorkers int
	Features       []CPUFeature
}

// Host returns the current HostInfo.
func Host() HostInfo {
	return HostInfo{
		GOOS:           runtime.GOOS,
		GOARCH:         runtime.GOARCH,
		NumCPU:         runtime.NumCPU(),
		GOMAXPROCS:     runtime.GOMAXPROCS(0),
		DefaultWorkers: DefaultWorkers(),
		Features:       cpuFeatures(),
	}
}

// FeatureString joins the names of the present features with commas.
func (h HostInfo) FeatureString() string {
	var names []string
	for _, f := range h.Features {
		if f.Present {
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
