package rotate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// headerLayout is ISO 8601 in UTC with millisecond precision
const headerLayout = "2006-01-02T15:04:05.000Z"

// FormatDateFileName renders t as YYYY-MM-DD-H-M-S-ms. Only the date part
// is zero-padded. All components are taken in UTC.
func FormatDateFileName(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s-%d-%d-%d-%d",
		t.Format("2006-01-02"), t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
}

// LogDateHeader returns the header line written at the top of a fresh
// log file
func LogDateHeader(t time.Time) string {
	return "[" + t.UTC().Format(headerLayout) + "]"
}

// ArchiveName returns the path an archive of file created at created
// gets, e.g. logs/app.log -> logs/2024-01-01-0-0-0-0.log.gz
func ArchiveName(file string, created time.Time, ext string) string {
	return filepath.Join(filepath.Dir(file), FormatDateFileName(created)+filepath.Ext(file)+"."+ext)
}

var archivePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(\d{1,2})-(\d{1,2})-(\d{1,2})-(\d{1,3})(.*)\.(gz|br)$`)

// parseArchiveName recovers the creation time and original extension
// from an archive's base name
func parseArchiveName(name string) (created time.Time, ext string, ok bool) {
	m := archivePattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, "", false
	}
	day, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return time.Time{}, "", false
	}
	var parts [4]int
	for i := range parts {
		parts[i], _ = strconv.Atoi(m[i+2])
	}
	created = day.Add(time.Duration(parts[0])*time.Hour +
		time.Duration(parts[1])*time.Minute +
		time.Duration(parts[2])*time.Second +
		time.Duration(parts[3])*time.Millisecond)
	return created, m[6], true
}
