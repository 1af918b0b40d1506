package sysinfo

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sys/unix"
)

// dnsCommand lists the resolver configuration.
var dnsCommand = []string{"scutil", "--dns"}

// socketCount asks the kernel for the package count; cpu.Info on darwin
// reports a single aggregated entry.
func socketCount(infos []cpu.InfoStat) int {
	if n, err := unix.SysctlUint32("hw.packages"); err == nil && n > 0 {
		return int(n)
	}
	return distinctPhysicalIDs(infos)
}
