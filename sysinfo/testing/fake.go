// Package testing provides test doubles for the sysinfo package.
package testing

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"machinereport/sysinfo"
)

// ErrUnavailable is returned by FakeHost queries configured to fail.
var ErrUnavailable = errors.New("unavailable")

// FakeHost answers sysinfo.Host queries from fixed values. Setting Fail makes
// every query return ErrUnavailable.
type FakeHost struct {
	Name, Version string
	KernelName    string
	HostName      string
	Ifaces        []sysinfo.Interface
	Static        sysinfo.CPUStatic
	Load          sysinfo.LoadAvg
	Total, Used   uint64
	FS            sysinfo.FSStat
	VirtSystem    string
	VirtRole      string
	Up            time.Duration
	Env           map[string]string
	Fail          bool

	mu    sync.Mutex
	calls map[string]int
}

var _ sysinfo.Host = (*FakeHost)(nil)

func (f *FakeHost) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
	if f.Fail {
		return ErrUnavailable
	}
	return nil
}

// Calls returns how many times the named query ran.
func (f *FakeHost) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *FakeHost) Platform() (string, string, error) {
	if err := f.record("Platform"); err != nil {
		return "", "", err
	}
	return f.Name, f.Version, nil
}

func (f *FakeHost) Kernel() (string, error) {
	if err := f.record("Kernel"); err != nil {
		return "", err
	}
	return f.KernelName, nil
}

func (f *FakeHost) Hostname() (string, error) {
	if err := f.record("Hostname"); err != nil {
		return "", err
	}
	return f.HostName, nil
}

func (f *FakeHost) Interfaces() ([]sysinfo.Interface, error) {
	if err := f.record("Interfaces"); err != nil {
		return nil, err
	}
	return f.Ifaces, nil
}

func (f *FakeHost) CPUStatic() (sysinfo.CPUStatic, error) {
	if err := f.record("CPUStatic"); err != nil {
		return sysinfo.CPUStatic{}, err
	}
	return f.Static, nil
}

func (f *FakeHost) LoadAvg() (sysinfo.LoadAvg, error) {
	if err := f.record("LoadAvg"); err != nil {
		return sysinfo.LoadAvg{}, err
	}
	return f.Load, nil
}

func (f *FakeHost) MemTotal() (uint64, error) {
	if err := f.record("MemTotal"); err != nil {
		return 0, err
	}
	return f.Total, nil
}

func (f *FakeHost) MemUsed() (uint64, error) {
	if err := f.record("MemUsed"); err != nil {
		return 0, err
	}
	return f.Used, nil
}

func (f *FakeHost) Statfs(string) (sysinfo.FSStat, error) {
	if err := f.record("Statfs"); err != nil {
		return sysinfo.FSStat{}, err
	}
	return f.FS, nil
}

func (f *FakeHost) Virtualization() (string, string, error) {
	if err := f.record("Virtualization"); err != nil {
		return "", "", err
	}
	return f.VirtSystem, f.VirtRole, nil
}

func (f *FakeHost) Uptime() (time.Duration, error) {
	if err := f.record("Uptime"); err != nil {
		return 0, err
	}
	return f.Up, nil
}

func (f *FakeHost) Getenv(key string) string {
	_ = f.record("Getenv")
	return f.Env[key]
}

// FakeRunner returns canned command output keyed by the full command line,
// e.g. "last -1 alice". Unknown commands yield "".
type FakeRunner struct {
	Outputs map[string]string

	// Delay is slept before every command returns.
	Delay time.Duration

	mu       sync.Mutex
	commands []string
	done     int
}

var _ sysinfo.Runner = (*FakeRunner)(nil)

func (r *FakeRunner) Run(ctx context.Context, name string, args ...string) string {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))

	r.mu.Lock()
	r.commands = append(r.commands, line)
	r.mu.Unlock()

	if r.Delay > 0 {
		select {
		case <-time.After(r.Delay):
		case <-ctx.Done():
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.done++
	return r.Outputs[line]
}

// Commands returns the command lines started so far, in start order.
func (r *FakeRunner) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.commands))
	copy(out, r.commands)
	return out
}

// Completed returns how many commands have returned.
func (r *FakeRunner) Completed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}
