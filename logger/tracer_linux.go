package logger

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cast"
)

// tracerAttached checks TracerPid in /proc/self/status
func tracerAttached() bool {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if v, ok := strings.CutPrefix(line, "TracerPid:"); ok {
			return cast.ToInt(strings.TrimSpace(v)) != 0
		}
	}
	return false
}
