//go:build arm64

package num

import "golang.org/x/sys/cpu"

func cpuFeatures() []CPUFeature {
	return []CPUFeature{
		{"asimd", cpu.ARM64.HasASIMD},
		{"fp", cpu.ARM64.HasFP},
		{"fphp", cpu.ARM64.HasFPHP},
		{"asimdhp", cpu.ARM64.HasASIMDHP},
		{"sve", cpu.ARM64.HasSVE},
		{"sve2", cpu.ARM64.HasSVE2},
		{"atomics", cpu.ARM64.HasATOMICS},
	}
}
