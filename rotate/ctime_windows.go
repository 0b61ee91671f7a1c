package rotate

import (
	"os"
	"syscall"
	"time"
)

func fileTimes(_ string, info os.FileInfo) (birth, change time.Time) {
	d, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return
	}
	birth = time.Unix(0, d.CreationTime.Nanoseconds())
	return
}
