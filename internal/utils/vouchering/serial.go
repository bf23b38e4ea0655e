package vouchering

import (
	"fmt"
	"time"
)

// SerialNumber derives a human-readable voucher serial from the business date
// and the count of vouchers already created for that calendar day, e.g.
// VC-20260214-003. The count is read at generation time, so two concurrent
// generations for the same day can compute the same serial; the UNIQUE
// constraint on voucher_records.serial_number is the actual correctness
// guarantee at commit.
func SerialNumber(date time.Time, existingCount int) string {
	return fmt.Sprintf("VC-%s-%03d", date.Format("20060102"), existingCount+1)
}

// DayBounds returns the half-open [start, end) window covering the full
// calendar day of t in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}
