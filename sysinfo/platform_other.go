//go:build !darwin

package sysinfo

import "github.com/shirou/gopsutil/v3/cpu"

// dnsCommand lists the resolver configuration (systemd-resolved).
var dnsCommand = []string{"resolvectl", "dns"}

func socketCount(infos []cpu.InfoStat) int {
	return distinctPhysicalIDs(infos)
}
