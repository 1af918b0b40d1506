// Package report gathers every snapshot for a run and renders the machine
// report table.
package report

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"machinereport/ascii"
	"machinereport/layout"
	"machinereport/sysinfo"
)

// Gather collects a full Report. DNS, client IP and login are started first
// on their own goroutines; the remaining collectors run on the calling
// goroutine while those are in flight.
//
// Parameters:
//   - ctx: passed to the external commands; Gather itself never cancels it
//   - c: the collector every snapshot is read from
//
// Returns:
//   - A complete Report. Gather returns only after all three tasks have
//     finished; a command that never exits blocks it.
func Gather(ctx context.Context, c *sysinfo.Collector) sysinfo.Report {
	var (
		g      errgroup.Group
		dns    []string
		client string
		login  sysinfo.LoginSnapshot
	)

	// Collectors never fail; each task returns a sentinel instead.
	g.Go(func() error {
		dns = c.DNS(ctx)
		return nil
	})
	g.Go(func() error {
		client = c.ClientIP(ctx)
		return nil
	})
	g.Go(func() error {
		login = c.Login(ctx)
		return nil
	})

	r := sysinfo.Report{
		OS:   c.OS(),
		User: c.CurrentUser(),
		Network: sysinfo.NetworkSnapshot{
			Hostname:  c.Hostname(),
			MachineIP: c.MachineIP(),
		},
		CPU:    c.CPU(),
		Memory: c.Memory(),
		Disk:   c.Disk(),
	}

	// Wait is only the join point: no task returns an error and none is
	// cancelled, so there is nothing to report.
	_ = g.Wait()

	r.Network.ClientIP = client
	r.Network.DNS = dns
	r.Login = login
	return r
}

// Run gathers a report from c and writes it to w. Nothing is written until
// every collector has returned.
func Run(ctx context.Context, w io.Writer, c *sysinfo.Collector, measure layout.Measure, theme ascii.Theme) error {
	return Render(w, Gather(ctx, c), measure, theme)
}
