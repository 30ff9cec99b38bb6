package service

import "fmt"

// fileSizeUnits holds the supported magnitude labels in increasing order.
var fileSizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// BytesToString renders a byte count as a human-readable size with exactly
// two decimal digits, e.g. 2612453 -> "2.49 MB". The unit index is capped at
// TB so arbitrarily large values never run past the table. Negative input
// renders as "0.00 B".
func BytesToString(size int64) string {
	if size < 0 {
		size = 0
	}

	div := int64(1)
	exp := 0
	for n := size / 1024; n > 0 && exp < len(fileSizeUnits)-1; n /= 1024 {
		div *= 1024
		exp++
	}

	return fmt.Sprintf("%.2f %s", float64(size)/float64(div), fileSizeUnits[exp])
}
