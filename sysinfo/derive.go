package sysinfo

import "strings"

// DiskFromStat sizes a filesystem. Used is total minus the blocks available
// to unprivileged users, not minus free blocks, so root-reserved space shows
// up as used.
func DiskFromStat(st FSStat) DiskSnapshot {
	total := st.Blocks * st.BlockSize
	avail := st.Avail * st.BlockSize
	var used uint64
	if avail < total {
		used = total - avail
	}
	return DiskSnapshot{Total: total, Used: used, Percent: Percent(used, total)}
}

// NewMemorySnapshot derives the usage percentage from used and total bytes.
func NewMemorySnapshot(used, total uint64) MemorySnapshot {
	return MemorySnapshot{Total: total, Used: used, Percent: Percent(used, total)}
}

// LoadPercent expresses a load average as a share of the logical cores.
// Load average counts runnable processes, so this is an approximation of CPU
// utilisation and can exceed 100.
func LoadPercent(load float64, logicalCores int) float64 {
	if logicalCores <= 0 {
		return 0
	}
	return load / float64(logicalCores) * 100
}

// HypervisorName reports the virtualization system when this host is a
// guest, and BareMetal otherwise.
func HypervisorName(system, role string) string {
	if role == "guest" && strings.TrimSpace(system) != "" {
		return strings.ToUpper(strings.TrimSpace(system))
	}
	return BareMetal
}

// normalizeCPU enforces logical >= physical and at least one socket when any
// core count is known.
func normalizeCPU(st CPUStatic) CPUStatic {
	st.Model = strings.TrimSpace(st.Model)
	if st.CoresPhysical < 0 {
		st.CoresPhysical = 0
	}
	if st.CoresLogical < st.CoresPhysical {
		st.CoresLogical = st.CoresPhysical
	}
	if st.CoresPhysical > 0 && st.Sockets < 1 {
		st.Sockets = 1
	}
	return st
}
