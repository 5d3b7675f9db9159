//go:build !amd64 && !arm64

package num

// No feature table for this architecture yet.
func cpuFeatures() []CPUFeature {
	return nil
}
