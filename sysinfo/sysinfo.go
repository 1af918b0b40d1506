// Package sysinfo collects the machine state shown in the report. It defines
// the snapshot types, the collaborators that talk to the host (Host, Runner),
// the collectors that turn raw queries into snapshots, and the pure parsers
// for the text scraped from external commands.
//
// No collector returns an error. A failed query is replaced by one of the
// sentinel values below and logged at debug level.
package sysinfo

// Sentinel values substituted when real data is unavailable.
const (
	Unknown       = "unknown"
	NotAvailable  = "N/A"
	NotConnected  = "Not connected"
	LocalSession  = "Local Session"
	NeverLoggedIn = "Never logged in"
	NoIPFound     = "No IP found"
	BareMetal     = "Bare Metal"
)

// OSSnapshot identifies the operating system.
type OSSnapshot struct {
	// Name is the product name, e.g. "macOS" or "Ubuntu"
	Name string `yaml:"name"`

	// Version is the product version, e.g. "14.1"
	Version string `yaml:"version"`

	// Kernel is the kernel name and release, e.g. "Darwin 23.1.0"
	Kernel string `yaml:"kernel"`
}

// String returns the name and version joined for display.
func (o OSSnapshot) String() string {
	switch {
	case o.Name == "" && o.Version == "":
		return Unknown
	case o.Version == "":
		return o.Name
	case o.Name == "":
		return o.Version
	}
	return o.Name + " " + o.Version
}

// CPUSnapshot describes the processor and its current load.
type CPUSnapshot struct {
	Model         string  `yaml:"model"`
	CoresPhysical int     `yaml:"cores_physical"`
	CoresLogical  int     `yaml:"cores_logical"`
	Sockets       int     `yaml:"sockets"`
	Hypervisor    string  `yaml:"hypervisor"`
	Load1         float64 `yaml:"load_1"`
	Load5         float64 `yaml:"load_5"`
	Load15        float64 `yaml:"load_15"`
}

// MemorySnapshot reports physical memory. Used is active + wired pages.
type MemorySnapshot struct {
	Total   uint64  `yaml:"total"`
	Used    uint64  `yaml:"used"`
	Percent float64 `yaml:"percent"`
}

// DiskSnapshot reports the root filesystem. Used is total minus the space
// available to unprivileged users, so reserved blocks count as used.
type DiskSnapshot struct {
	Total   uint64  `yaml:"total"`
	Used    uint64  `yaml:"used"`
	Percent float64 `yaml:"percent"`
}

// LoginSnapshot holds the last login record and the uptime.
type LoginSnapshot struct {
	Time string `yaml:"time"`

	// IP is the login origin; only meaningful when HasIP is true.
	IP    string `yaml:"ip,omitempty"`
	HasIP bool   `yaml:"has_ip"`

	Uptime string `yaml:"uptime"`
}

// NetworkSnapshot holds addresses related to this machine and session.
type NetworkSnapshot struct {
	Hostname  string `yaml:"hostname"`
	MachineIP string `yaml:"machine_ip"`
	ClientIP  string `yaml:"client_ip"`

	// DNS lists resolvers in discovery order, at most three, never empty.
	DNS []string `yaml:"dns"`
}

// Report bundles every snapshot of a single run.
type Report struct {
	OS      OSSnapshot      `yaml:"os"`
	User    string          `yaml:"user"`
	Network NetworkSnapshot `yaml:"network"`
	CPU     CPUSnapshot     `yaml:"cpu"`
	Memory  MemorySnapshot  `yaml:"memory"`
	Disk    DiskSnapshot    `yaml:"disk"`
	Login   LoginSnapshot   `yaml:"login"`
}
