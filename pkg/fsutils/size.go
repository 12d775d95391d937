package fsutils

import "strconv"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// SizeShortText returns a compact human readable size, e.g. "12KB".
func SizeShortText(size int64) string {
	if size < 1024 {
		return strconv.FormatInt(size, 10) + "B"
	}
	div := int64(1024)
	exp := 1
	for size >= div*1024 && exp < len(sizeUnits)-1 {
		div *= 1024
		exp++
	}
	val := (size + div/2) / div
	if val >= 1024 && exp < len(sizeUnits)-1 {
		val = (val + 512) / 1024
		exp++
	}
	return strconv.FormatInt(val, 10) + sizeUnits[exp]
}
