package rotate

import (
	"os"
	"syscall"
	"time"
)

func fileTimes(_ string, info os.FileInfo) (birth, change time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	if st.Birthtimespec.Sec != 0 {
		birth = time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	}
	change = time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec)
	return
}
