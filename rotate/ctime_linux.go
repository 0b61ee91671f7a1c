package rotate

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes reads the change time from info and, when path is set, the
// birth time through statx
func fileTimes(path string, info os.FileInfo) (birth, change time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	change = time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	if path == "" {
		return
	}

	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx)
	if err == nil && stx.Mask&unix.STATX_BTIME != 0 && stx.Btime.Sec != 0 {
		birth = time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
	}
	return
}
