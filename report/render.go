package report

import (
	"bytes"
	"fmt"
	"io"

	"machinereport/ascii"
	"machinereport/layout"
	"machinereport/sysinfo"
)

// Row labels.
const (
	LabelOS         = "OS"
	LabelKernel     = "KERNEL"
	LabelHostname   = "HOSTNAME"
	LabelMachineIP  = "MACHINE IP"
	LabelClientIP   = "CLIENT  IP"
	LabelUser       = "USER"
	LabelProcessor  = "PROCESSOR"
	LabelCores      = "CORES"
	LabelHypervisor = "HYPERVISOR"
	LabelCPUUsage   = "CPU USAGE"
	LabelLoad1      = "LOAD  1m"
	LabelLoad5      = "LOAD  5m"
	LabelLoad15     = "LOAD 15m"
	LabelVolume     = "VOLUME"
	LabelDiskUsage  = "DISK USAGE"
	LabelMemory     = "MEMORY"
	LabelMemUsage   = "USAGE"
	LabelLastLogin  = "LAST LOGIN"
	LabelUptime     = "UPTIME"
)

// DNSLabel returns the label of the i-th resolver row, counting from 1.
func DNSLabel(i int) string {
	return fmt.Sprintf("DNS  IP %d", i)
}

// CoresString describes the core and socket counts.
func CoresString(cpu sysinfo.CPUSnapshot) string {
	if cpu.CoresPhysical < 1 {
		return sysinfo.Unknown
	}
	return fmt.Sprintf("%d vCPU(s) / %d Socket(s)", cpu.CoresPhysical, cpu.Sockets)
}

// CPUUsage is the 1-minute load average as a share of the logical cores.
// This approximates utilisation and may exceed 100.
func CPUUsage(cpu sysinfo.CPUSnapshot) float64 {
	return sysinfo.LoadPercent(cpu.Load1, cpu.CoresLogical)
}

// MemoryString formats memory as "used/total GiB [percent]".
func MemoryString(m sysinfo.MemorySnapshot) string {
	return fmt.Sprintf("%s/%s GiB [%s]", sysinfo.FormatGiB(m.Used), sysinfo.FormatGiB(m.Total), sysinfo.FormatPercent(m.Percent))
}

// DiskString formats disk usage as "used/total GB [percent]". Sizes are
// binary gigabytes, like memory, under the traditional "GB" label.
func DiskString(d sysinfo.DiskSnapshot) string {
	return fmt.Sprintf("%s/%s GB [%s]", sysinfo.FormatGiB(d.Used), sysinfo.FormatGiB(d.Total), sysinfo.FormatPercent(d.Percent))
}

// Sections returns the table body: one slice of rows per section, in display
// order (identity, network, CPU, disk, memory, login).
func Sections(r sysinfo.Report) [][]layout.Row {
	identity := []layout.Row{
		{Label: LabelOS, Value: r.OS.String()},
		{Label: LabelKernel, Value: r.OS.Kernel},
	}

	network := []layout.Row{
		{Label: LabelHostname, Value: r.Network.Hostname},
		{Label: LabelMachineIP, Value: r.Network.MachineIP},
		{Label: LabelClientIP, Value: r.Network.ClientIP},
	}
	dns := r.Network.DNS
	if len(dns) == 0 {
		dns = []string{sysinfo.NotAvailable}
	}
	for i, ip := range dns {
		network = append(network, layout.Row{Label: DNSLabel(i + 1), Value: ip})
	}
	network = append(network, layout.Row{Label: LabelUser, Value: r.User})

	cores := r.CPU.CoresLogical
	cpu := []layout.Row{
		{Label: LabelProcessor, Value: r.CPU.Model},
		{Label: LabelCores, Value: CoresString(r.CPU)},
		{Label: LabelHypervisor, Value: r.CPU.Hypervisor},
		{Label: LabelCPUUsage, Value: sysinfo.FormatPercent(CPUUsage(r.CPU))},
		{Label: LabelLoad1, Mode: layout.Bar, Percent: sysinfo.LoadPercent(r.CPU.Load1, cores)},
		{Label: LabelLoad5, Mode: layout.Bar, Percent: sysinfo.LoadPercent(r.CPU.Load5, cores)},
		{Label: LabelLoad15, Mode: layout.Bar, Percent: sysinfo.LoadPercent(r.CPU.Load15, cores)},
	}

	disk := []layout.Row{
		{Label: LabelVolume, Value: DiskString(r.Disk)},
		{Label: LabelDiskUsage, Mode: layout.Bar, Percent: r.Disk.Percent},
	}

	memory := []layout.Row{
		{Label: LabelMemory, Value: MemoryString(r.Memory)},
		{Label: LabelMemUsage, Mode: layout.Bar, Percent: r.Memory.Percent},
	}

	login := []layout.Row{{Label: LabelLastLogin, Value: r.Login.Time}}
	if r.Login.HasIP {
		login = append(login, layout.Row{Value: r.Login.IP})
	}
	login = append(login, layout.Row{Label: LabelUptime, Value: r.Login.Uptime})

	return [][]layout.Row{identity, network, cpu, disk, memory, login}
}

// Lines lays out r as the finished table, one string per line.
func Lines(r sysinfo.Report, measure layout.Measure, theme ascii.Theme) []string {
	sections := Sections(r)

	values := ascii.Banner()
	for _, rows := range sections {
		for _, row := range rows {
			if row.Mode == layout.Text {
				values = append(values, row.Value)
			}
		}
	}
	tbl := layout.NewTable(values, measure, theme)

	lines := tbl.Header()
	for _, text := range ascii.Banner() {
		lines = append(lines, tbl.Centered(text))
	}
	lines = append(lines, tbl.Divider(layout.DividerTop))
	for i, rows := range sections {
		if i > 0 {
			lines = append(lines, tbl.Divider(layout.DividerMid))
		}
		for _, row := range rows {
			lines = append(lines, tbl.Line(row))
		}
	}
	return append(lines, tbl.Divider(layout.DividerBottom))
}

// Render writes the table for r to w.
//
// Parameters:
//   - w: Destination of the report, usually stdout
//   - r: A fully gathered report
//   - measure: How columns are counted when sizing the table
//   - theme: Plain or colored decoration
//
// Returns:
//   - An error only when w rejects the write. The whole table is built first
//     and handed to w in a single Write call.
func Render(w io.Writer, r sysinfo.Report, measure layout.Measure, theme ascii.Theme) error {
	var buf bytes.Buffer
	for _, line := range Lines(r, measure, theme) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
