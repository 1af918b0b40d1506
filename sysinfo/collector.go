package sysinfo

import (
	"context"
	"strings"

	"github.com/dustin/go-humanize"

	"machinereport/logger"
)

// identityCache holds values that cannot change while the process runs.
// Each field is written at most once, guarded by its done flag.
type identityCache struct {
	osDone bool
	os     OSSnapshot

	hostnameDone bool
	hostname     string

	userDone bool
	user     string

	cpuDone bool
	cpu     CPUStatic

	memTotalDone bool
	memTotal     uint64

	dnsDone bool
	dns     []string
}

// Collector turns Host and Runner queries into snapshots, substituting
// sentinels for anything unavailable.
//
// A Collector is not safe for concurrent use of the same collector method.
// The report pipeline calls the fast collectors from one goroutine and runs
// DNS, ClientIP and Login each on their own goroutine; those three share no
// cached state with the rest.
type Collector struct {
	host  Host
	run   Runner
	log   logger.Logger
	cache identityCache
}

// NewCollector builds a Collector. A nil logger discards messages.
func NewCollector(host Host, run Runner, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{host: host, run: run, log: log}
}

// NewLocalCollector builds a Collector for the running machine.
func NewLocalCollector(log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	run := ExecRunner{OnError: func(err *CommandError) {
		log.Debug("%v", err)
	}}
	return NewCollector(LocalHost{}, run, log)
}

// OS returns the product name, version and kernel. Memoized.
func (c *Collector) OS() OSSnapshot {
	if c.cache.osDone {
		return c.cache.os
	}
	var snap OSSnapshot
	name, version, err := c.host.Platform()
	if err != nil {
		c.log.Debug("platform query failed, using %q: %v", Unknown, err)
		name, version = Unknown, ""
	}
	snap.Name, snap.Version = name, version
	if snap.Name == "" {
		snap.Name = Unknown
	}

	kernel, err := c.host.Kernel()
	if err != nil || strings.TrimSpace(kernel) == "" {
		c.log.Debug("kernel query failed, using %q: %v", Unknown, err)
		kernel = Unknown
	}
	snap.Kernel = kernel

	c.cache.os, c.cache.osDone = snap, true
	return snap
}

// Hostname returns the machine's network name. Memoized.
func (c *Collector) Hostname() string {
	if c.cache.hostnameDone {
		return c.cache.hostname
	}
	name, err := c.host.Hostname()
	if err != nil || strings.TrimSpace(name) == "" {
		c.log.Debug("hostname query failed, using %q: %v", Unknown, err)
		name = Unknown
	}
	c.cache.hostname, c.cache.hostnameDone = name, true
	return name
}

// CurrentUser returns $USER. Memoized.
func (c *Collector) CurrentUser() string {
	if c.cache.userDone {
		return c.cache.user
	}
	user := c.host.Getenv("USER")
	if user == "" {
		c.log.Debug("USER is not set, using %q", Unknown)
		user = Unknown
	}
	c.cache.user, c.cache.userDone = user, true
	return user
}

// MachineIP returns the primary non-loopback IPv4 address.
func (c *Collector) MachineIP() string {
	ifaces, err := c.host.Interfaces()
	if err != nil {
		c.log.Debug("interface enumeration failed, using %q: %v", NoIPFound, err)
		return NoIPFound
	}
	return PickMachineIP(ifaces)
}

// CPU returns the processor description and a fresh load average reading.
// The model, core counts, sockets and hypervisor are memoized.
func (c *Collector) CPU() CPUSnapshot {
	if !c.cache.cpuDone {
		st, err := c.host.CPUStatic()
		if err != nil {
			c.log.Debug("cpu query failed: %v", err)
		}
		c.cache.cpu, c.cache.cpuDone = normalizeCPU(st), true
	}
	st := c.cache.cpu

	snap := CPUSnapshot{
		Model:         st.Model,
		CoresPhysical: st.CoresPhysical,
		CoresLogical:  st.CoresLogical,
		Sockets:       st.Sockets,
		Hypervisor:    c.hypervisor(),
	}
	if snap.Model == "" {
		snap.Model = Unknown
	}

	avg, err := c.host.LoadAvg()
	if err != nil {
		c.log.Debug("load average query failed, using 0: %v", err)
	}
	snap.Load1, snap.Load5, snap.Load15 = avg.Load1, avg.Load5, avg.Load15
	return snap
}

func (c *Collector) hypervisor() string {
	system, role, err := c.host.Virtualization()
	if err != nil {
		c.log.Debug("virtualization query failed, assuming %q: %v", BareMetal, err)
		return BareMetal
	}
	return HypervisorName(system, role)
}

// Memory returns total (memoized) and freshly queried active + wired bytes.
func (c *Collector) Memory() MemorySnapshot {
	if !c.cache.memTotalDone {
		total, err := c.host.MemTotal()
		if err != nil {
			c.log.Debug("memory total query failed: %v", err)
		}
		c.cache.memTotal, c.cache.memTotalDone = total, true
	}

	used, err := c.host.MemUsed()
	if err != nil {
		c.log.Debug("memory usage query failed: %v", err)
	}
	snap := NewMemorySnapshot(used, c.cache.memTotal)
	c.log.Debug("memory %s of %s", humanize.IBytes(snap.Used), humanize.IBytes(snap.Total))
	return snap
}

// Disk returns usage of the root filesystem.
func (c *Collector) Disk() DiskSnapshot {
	st, err := c.host.Statfs("/")
	if err != nil {
		c.log.Debug("statfs / failed: %v", err)
		return DiskSnapshot{}
	}
	snap := DiskFromStat(st)
	c.log.Debug("disk %s of %s", humanize.IBytes(snap.Used), humanize.IBytes(snap.Total))
	return snap
}

// DNS returns up to three resolver addresses. Memoized.
func (c *Collector) DNS(ctx context.Context) []string {
	if c.cache.dnsDone {
		return c.cache.dns
	}
	raw := c.run.Run(ctx, dnsCommand[0], dnsCommand[1:]...)
	dns := ParseDNS(raw)
	c.cache.dns, c.cache.dnsDone = dns, true
	return dns
}

// ClientIP returns the address of the SSH client, or a sentinel for local
// and unknown sessions.
func (c *Collector) ClientIP(ctx context.Context) string {
	ssh := c.host.Getenv("SSH_CLIENT")
	if strings.TrimSpace(ssh) != "" {
		return ParseClientIP(ssh, "")
	}
	return ParseClientIP("", c.run.Run(ctx, "who", "am", "i"))
}

// Login returns the last login record of $USER and the uptime.
func (c *Collector) Login(ctx context.Context) LoginSnapshot {
	var info LoginSnapshot
	if user := c.host.Getenv("USER"); user != "" {
		info = ParseLastLogin(c.run.Run(ctx, "last", "-1", user))
	} else {
		info = LoginSnapshot{Time: NeverLoggedIn}
	}
	info.Uptime = c.uptime(ctx)
	return info
}

func (c *Collector) uptime(ctx context.Context) string {
	if raw := c.run.Run(ctx, "uptime"); strings.TrimSpace(raw) != "" {
		return ParseUptime(raw)
	}
	d, err := c.host.Uptime()
	if err != nil {
		c.log.Debug("uptime unavailable, using %q: %v", NotAvailable, err)
		return NotAvailable
	}
	return FormatUptime(d)
}
