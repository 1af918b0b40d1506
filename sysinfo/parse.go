package sysinfo

import (
	"bufio"
	"net"
	"strings"
)

// maxDNS caps the number of resolvers reported.
const maxDNS = 3

// ParseUptime shortens the output of uptime(1).
//
// Parameters:
//   - raw: the full line printed by uptime, e.g. "10:00  up 3 days,  4:15, 2 users, ..."
//
// Returns:
//   - "Nd Hh MMm" for a day count followed by a clock segment
//   - "Nd" for a day count followed by anything else, e.g. "17 mins"
//   - "Hh MMm" for a clock segment alone
//   - raw, unchanged, for everything else
//
// Example: ParseUptime("up 3 days, 4:15") returns "3d 4h 15m"
func ParseUptime(raw string) string {
	idx := strings.Index(raw, "up ")
	if idx < 0 {
		return raw
	}
	segs := strings.Split(raw[idx+3:], ",")
	first := strings.TrimSpace(segs[0])

	if strings.Contains(first, "day") {
		days := strings.ReplaceAll(first, " days", "d")
		days = strings.ReplaceAll(days, " day", "d")
		days = strings.ReplaceAll(days, " ", "")
		if len(segs) > 1 {
			if clock, ok := clockDuration(segs[1]); ok {
				return days + " " + clock
			}
		}
		return days
	}

	if clock, ok := clockDuration(first); ok {
		return clock
	}
	return raw
}

// clockDuration turns an "H:MM" segment into "Hh MMm", keeping the digits as
// printed.
func clockDuration(seg string) (string, bool) {
	h, m, ok := strings.Cut(strings.TrimSpace(seg), ":")
	if !ok || !isDigits(h) || !isDigits(m) {
		return "", false
	}
	return h + "h " + m + "m", true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// ParseLastLogin reads the first record printed by last(1).
//
// Parameters:
//   - raw: Output of "last -1 <user>"
//
// Returns:
//   - Time set to NeverLoggedIn for empty output or a bare wtmp banner
//   - IP and HasIP set when the token after the user and tty fields looks
//     like a dotted address; the timestamp then starts one field later
//   - Time set to the four timestamp fields, or to the whole line when the
//     record is too short to hold them
func ParseLastLogin(raw string) LoginSnapshot {
	line, _, _ := strings.Cut(raw, "\n")
	line = strings.TrimSpace(line)
	if line == "" || strings.Contains(line, "never logged in") || strings.HasPrefix(line, "wtmp begins") {
		return LoginSnapshot{Time: NeverLoggedIn}
	}

	var info LoginSnapshot
	parts := strings.Fields(line)
	start := 2
	if len(parts) > 2 && isDigit(parts[2][0]) && strings.Contains(parts[2], ".") {
		info.IP = parts[2]
		info.HasIP = true
		start = 3
	}

	if len(parts) >= start+4 {
		info.Time = strings.Join(parts[start:start+4], " ")
	} else {
		info.Time = line
	}
	return info
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// ParseClientIP picks the address of the connected client. SSH_CLIENT
// ("ip port port") wins; otherwise the parenthesised host of who(1) output
// is used.
func ParseClientIP(sshClient, whoAmI string) string {
	if f := strings.Fields(sshClient); len(f) > 0 {
		return f[0]
	}
	if strings.TrimSpace(whoAmI) == "" {
		return NotConnected
	}
	start := strings.Index(whoAmI, "(")
	end := strings.Index(whoAmI, ")")
	if start >= 0 && end > start+1 {
		return whoAmI[start+1 : end]
	}
	return LocalSession
}

// ParseDNS extracts resolver addresses, in order, from either scutil --dns,
// resolvectl dns or resolv.conf style text. Only the first resolver of each
// scutil block is used. At most three are returned; none yields ["N/A"].
func ParseDNS(raw string) []string {
	var out []string
	add := func(candidates ...string) {
		for _, c := range candidates {
			if len(out) >= maxDNS {
				return
			}
			if net.ParseIP(c) != nil {
				out = append(out, c)
			}
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() && len(out) < maxDNS {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "nameserver[0]"):
			if _, v, ok := strings.Cut(line, ":"); ok {
				add(strings.TrimSpace(v))
			}
		case strings.HasPrefix(line, "nameserver "):
			f := strings.Fields(line)
			add(f[1])
		case strings.HasPrefix(line, "Global:"), strings.HasPrefix(line, "Link "):
			if _, v, ok := strings.Cut(line, ": "); ok {
				add(strings.Fields(v)...)
			}
		}
	}

	if len(out) == 0 {
		return []string{NotAvailable}
	}
	return out
}

// PickMachineIP returns the first IPv4 address that is not loopback and does
// not belong to a loopback or docker interface.
func PickMachineIP(ifaces []Interface) string {
	for _, iface := range ifaces {
		if strings.HasPrefix(iface.Name, "lo") || strings.HasPrefix(iface.Name, "docker") {
			continue
		}
		for _, addr := range iface.Addrs {
			ip := parseAddr(addr)
			if ip == nil {
				continue
			}
			ip4 := ip.To4()
			if ip4 == nil || ip4.IsLoopback() {
				continue
			}
			return ip4.String()
		}
	}
	return NoIPFound
}

func parseAddr(addr string) net.IP {
	if ip, _, err := net.ParseCIDR(addr); err == nil {
		return ip
	}
	return net.ParseIP(addr)
}
