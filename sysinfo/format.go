// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Percent returns used/total*100, or 0 when total is 0.
func Percent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// FormatPercent renders p with two decimals and a percent sign.
//
// Example: FormatPercent(25) returns "25.00%"
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// FormatGiB renders a byte count in binary gigabytes (2^30) with two
// decimals. Memory and disk sizes both go through it; the disk row labels the
// result "GB".
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - The size in GiB, without a unit suffix
//
// Example: FormatGiB(1610612736) returns "1.50"
func FormatGiB(bytes uint64) string {
	return fmt.Sprintf("%.2f", float64(bytes)/float64(humanize.GiByte))
}

// FormatUptime converts a duration into the short form used by the report,
// e.g. "3d 4h 15m". Days are omitted when zero and minutes are always two
// digits, matching what ParseUptime produces from uptime(1).
//
// Example: FormatUptime(26*time.Hour + 3*time.Minute) returns "1d 2h 03m"
func FormatUptime(uptime time.Duration) string {
	if uptime < 0 {
		uptime = 0
	}
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %02dm", days, hours, mins)
	}
	return fmt.Sprintf("%dh %02dm", hours, mins)
}

// PrettyPlatform turns a gopsutil platform identifier into a display name.
//
// Example: PrettyPlatform("ubuntu") returns "Ubuntu"
func PrettyPlatform(platform string) string {
	platform = strings.TrimSpace(platform)
	switch strings.ToLower(platform) {
	case "":
		return ""
	case "darwin", "macos":
		return "macOS"
	}
	return cases.Title(language.English).String(platform)
}
