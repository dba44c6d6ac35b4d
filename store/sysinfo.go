package store

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// SysInfo records the machine a run was produced on.
type SysInfo struct {
	Platform string `json:"platform,omitempty"`
	CPU      string `json:"cpu,omitempty"`
	Cores    int    `json:"cores,omitempty"`
	Memory   string `json:"memory,omitempty"`
}

// CollectSysInfo queries the host. Probes that fail leave their field empty.
func CollectSysInfo() SysInfo {
	var si SysInfo
	if h, err := host.Info(); err == nil && h != nil {
		si.Platform = h.Platform
		if si.Platform == "" {
			si.Platform = h.OS
		}
	}
	if c, err := cpu.Info(); err == nil && len(c) > 0 {
		si.CPU = c[0].ModelName
	}
	if n, err := cpu.Counts(true); err == nil {
		si.Cores = n
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		si.Memory = fmt.Sprintf("%d GB", vm.Total/1024/1024/1024)
	}
	return si
}
