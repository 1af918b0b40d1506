package sysinfo

import (
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"
)

// Host is the set of OS-level queries the collectors depend on. Each method
// performs exactly one query and reports failure through its error.
type Host interface {
	// Platform returns the OS product name and version.
	Platform() (name, version string, err error)
	// Kernel returns the kernel name and release, e.g. "Darwin 23.1.0".
	Kernel() (string, error)
	Hostname() (string, error)
	Interfaces() ([]Interface, error)
	CPUStatic() (CPUStatic, error)
	LoadAvg() (LoadAvg, error)
	MemTotal() (uint64, error)
	// MemUsed returns active + wired bytes.
	MemUsed() (uint64, error)
	Statfs(path string) (FSStat, error)
	// Virtualization returns the hypervisor name and this host's role
	// ("guest" or "host"); both are empty on bare metal.
	Virtualization() (system, role string, err error)
	Uptime() (time.Duration, error)
	Getenv(key string) string
}

// Interface is a network interface and its addresses in CIDR notation.
type Interface struct {
	Name  string
	Addrs []string
}

// CPUStatic is the part of the CPU description that cannot change while the
// process runs.
type CPUStatic struct {
	Model         string
	CoresPhysical int
	CoresLogical  int
	Sockets       int
}

// LoadAvg holds the 1, 5 and 15 minute load averages.
type LoadAvg struct {
	Load1, Load5, Load15 float64
}

// FSStat is the subset of statfs(2) needed to size a filesystem.
type FSStat struct {
	Blocks    uint64
	Free      uint64 // free blocks, including those reserved for root
	Avail     uint64 // blocks available to unprivileged users
	BlockSize uint64
}

// LocalHost answers Host queries for the running machine using gopsutil and,
// on unix systems, golang.org/x/sys/unix.
type LocalHost struct{}

var _ Host = LocalHost{}

func (LocalHost) Platform() (string, string, error) {
	platform, _, version, err := host.PlatformInformation()
	if err != nil {
		return "", "", err
	}
	return PrettyPlatform(platform), strings.TrimSpace(version), nil
}

func (LocalHost) Hostname() (string, error) {
	return os.Hostname()
}

func (LocalHost) Interfaces() ([]Interface, error) {
	stats, err := gopsnet.Interfaces()
	if err != nil {
		return nil, err
	}
	out := make([]Interface, 0, len(stats))
	for _, s := range stats {
		iface := Interface{Name: s.Name}
		for _, a := range s.Addrs {
			iface.Addrs = append(iface.Addrs, a.Addr)
		}
		out = append(out, iface)
	}
	return out, nil
}

func (LocalHost) CPUStatic() (CPUStatic, error) {
	var st CPUStatic

	infos, err := cpu.Info()
	if err != nil {
		return st, err
	}
	if len(infos) > 0 {
		st.Model = strings.TrimSpace(infos[0].ModelName)
	}
	if n, err := cpu.Counts(false); err == nil {
		st.CoresPhysical = n
	}
	if n, err := cpu.Counts(true); err == nil {
		st.CoresLogical = n
	}
	st.Sockets = socketCount(infos)
	return st, nil
}

func (LocalHost) LoadAvg() (LoadAvg, error) {
	avg, err := load.Avg()
	if err != nil {
		return LoadAvg{}, err
	}
	return LoadAvg{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}, nil
}

func (LocalHost) MemTotal() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

func (LocalHost) MemUsed() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Active + vm.Wired, nil
}

func (LocalHost) Virtualization() (string, string, error) {
	return host.Virtualization()
}

func (LocalHost) Uptime() (time.Duration, error) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

func (LocalHost) Getenv(key string) string {
	return os.Getenv(key)
}

// distinctPhysicalIDs counts the packages reported by cpu.Info. Platforms that
// return a single aggregated entry count as one socket.
func distinctPhysicalIDs(infos []cpu.InfoStat) int {
	seen := make(map[string]struct{}, len(infos))
	for _, info := range infos {
		seen[info.PhysicalID] = struct{}{}
	}
	return len(seen)
}
