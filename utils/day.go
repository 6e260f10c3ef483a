package utils

import (
	"strconv"
	"time"
)

const dayKeyLayout = "2006-01-02"

func TodayKey() string {
	return DayKeyAt(time.Now())
}

func DayKeyAt(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// DayKeyFromOrderID ดึง "YYYY-MM-DD" จาก prefix ของ order id
func DayKeyFromOrderID(id string) (string, bool) {
	if len(id) < len(dayKeyLayout) {
		return "", false
	}
	day := id[:len(dayKeyLayout)]
	if _, err := time.Parse(dayKeyLayout, day); err != nil {
		return "", false
	}
	return day, true
}

// NewOrderID ประกอบ id {dayKey}-{queueNumber}-{suffix}
// suffix เป็น unix millis ฐาน 36 แบบเดียวกับ Date.now().toString(36)
func NewOrderID(dayKey string, queueNumber int, now time.Time) string {
	suffix := strconv.FormatInt(now.UnixMilli(), 36)
	return dayKey + "-" + strconv.Itoa(queueNumber) + "-" + suffix
}
