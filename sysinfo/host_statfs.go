//go:build darwin || linux || freebsd

package sysinfo

import (
	"strings"

	"golang.org/x/sys/unix"
)

func (LocalHost) Kernel() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", err
	}
	name := unix.ByteSliceToString(u.Sysname[:])
	release := unix.ByteSliceToString(u.Release[:])
	return strings.TrimSpace(name + " " + release), nil
}

func (LocalHost) Statfs(path string) (FSStat, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return FSStat{}, err
	}
	return FSStat{
		Blocks:    uint64(st.Blocks),
		Free:      uint64(st.Bfree),
		Avail:     uint64(st.Bavail),
		BlockSize: uint64(st.Bsize),
	}, nil
}
