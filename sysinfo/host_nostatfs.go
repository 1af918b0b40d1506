//go:build !darwin && !linux && !freebsd

package sysinfo

import (
	"errors"

	"github.com/shirou/gopsutil/v3/host"
)

var errNoStatfs = errors.New("statfs is not available on this platform")

func (LocalHost) Kernel() (string, error) {
	return host.KernelVersion()
}

func (LocalHost) Statfs(string) (FSStat, error) {
	return FSStat{}, errNoStatfs
}
