// Package vitals renders a one-line snapshot of host health for the
// dashboard. Every probe degrades gracefully: a value that cannot be read is
// simply omitted from the line.
package vitals

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

const (
	loadavgPath = "/proc/loadavg"
	meminfoPath = "/proc/meminfo"
)

// Snapshot returns something like "load 0.42 | mem 63% | procs 312".
func Snapshot() string {
	var parts []string

	if load, ok := loadAverage(); ok {
		parts = append(parts, "load "+load)
	}
	if pct, ok := memoryUsedPercent(); ok {
		parts = append(parts, fmt.Sprintf("mem %d%%", pct))
	}
	if procs, err := ps.Processes(); err == nil {
		parts = append(parts, fmt.Sprintf("procs %d", len(procs)))
	}

	if len(parts) == 0 {
		return "vitals unavailable"
	}
	return strings.Join(parts, " | ")
}

func loadAverage() (string, bool) {
	data, err := os.ReadFile(loadavgPath)
	if err != nil {
		return "", false
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

func memoryUsedPercent() (int, bool) {
	data, err := os.ReadFile(meminfoPath)
	if err != nil {
		return 0, false
	}

	var total, available int64
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			total, _ = strconv.ParseInt(fields[1], 10, 64)
		case "MemAvailable:":
			available, _ = strconv.ParseInt(fields[1], 10, 64)
		}
	}
	if total == 0 {
		return 0, false
	}
	return int((total - available) * 100 / total), true
}
