package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machinereport/ascii"
	"machinereport/layout"
	"machinereport/logger"
	"machinereport/sysinfo"
	sitesting "machinereport/sysinfo/testing"
)

func fixtureHost() *sitesting.FakeHost {
	return &sitesting.FakeHost{
		Name:       "Test OS",
		Version:    "1.0",
		KernelName: "Darwin 1.0",
		HostName:   "test-host",
		Ifaces:     []sysinfo.Interface{{Name: "en0", Addrs: []string{"10.0.0.5/24"}}},
		Static:     sysinfo.CPUStatic{Model: "Test CPU", CoresPhysical: 4, CoresLogical: 8, Sockets: 1},
		Load:       sysinfo.LoadAvg{Load1: 2.0},
		Total:      16_000_000_000,
		Used:       8_000_000_000,
		FS:         sysinfo.FSStat{Blocks: 500_000_000, Free: 260_000_000, Avail: 250_000_000, BlockSize: 1000},
		Up:         26*time.Hour + 3*time.Minute,
		Env:        map[string]string{"USER": "alice"},
	}
}

func fixtureRunner(delay time.Duration) *sitesting.FakeRunner {
	return &sitesting.FakeRunner{
		Delay: delay,
		Outputs: map[string]string{
			"scutil --dns":   "resolver #1\n  nameserver[0] : 8.8.8.8",
			"resolvectl dns": "Global: 8.8.8.8",
			"last -1 alice":  "alice ttys000 Mon Jan 1 10:00 still logged in",
		},
	}
}

// recordingWriter notes how many runner commands had finished when each
// write arrived.
type recordingWriter struct {
	bytes.Buffer
	run       *sitesting.FakeRunner
	completed []int
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.completed = append(w.completed, w.run.Completed())
	return w.Buffer.Write(p)
}

func TestGather(t *testing.T) {
	run := fixtureRunner(0)
	c := sysinfo.NewCollector(fixtureHost(), run, logger.Noop())

	r := Gather(context.Background(), c)

	assert.Equal(t, "Test OS 1.0", r.OS.String())
	assert.Equal(t, "Darwin 1.0", r.OS.Kernel)
	assert.Equal(t, "alice", r.User)
	assert.Equal(t, "test-host", r.Network.Hostname)
	assert.Equal(t, "10.0.0.5", r.Network.MachineIP)
	assert.Equal(t, sysinfo.NotConnected, r.Network.ClientIP)
	assert.Equal(t, []string{"8.8.8.8"}, r.Network.DNS)
	assert.Equal(t, "Mon Jan 1 10:00", r.Login.Time)
	assert.Equal(t, "1d 2h 03m", r.Login.Uptime)
	assert.InDelta(t, 50.0, r.Memory.Percent, 1e-9)
	assert.InDelta(t, 50.0, r.Disk.Percent, 1e-9)
	assert.Equal(t, uint64(250_000_000_000), r.Disk.Used)
}

func TestRunWritesAfterAllTasks(t *testing.T) {
	run := fixtureRunner(20 * time.Millisecond)
	c := sysinfo.NewCollector(fixtureHost(), run, logger.Noop())
	w := &recordingWriter{run: run}

	require.NoError(t, Run(context.Background(), w, c, layout.DisplayWidth, ascii.Plain()))

	require.Len(t, w.completed, 1, "the report is written in one piece")
	assert.Equal(t, len(run.Commands()), w.completed[0])
	// dns, who, last and uptime
	assert.Equal(t, 4, w.completed[0])

	out := w.String()
	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "25.00%")
	assert.Contains(t, out, "Mon Jan 1 10:00")
}

func TestGatherRunsSlowTasksConcurrently(t *testing.T) {
	const delay = 100 * time.Millisecond
	run := fixtureRunner(delay)
	c := sysinfo.NewCollector(fixtureHost(), run, logger.Noop())

	start := time.Now()
	Gather(context.Background(), c)
	elapsed := time.Since(start)

	// login runs last and uptime back to back; the other two overlap with it
	assert.Less(t, elapsed, 4*delay)

	var started []string
	for _, cmd := range run.Commands() {
		started = append(started, strings.Fields(cmd)[0])
	}
	assert.Contains(t, started, "who")
	assert.Contains(t, started, "last")
	assert.Contains(t, started, "uptime")
}
