package entity

// QueueConfig เก็บข้อมูลการชำระเงิน + สถานะเลขคิว (singleton, id=1)
type QueueConfig struct {
	ID uint `gorm:"primaryKey" json:"-"`

	PromptPayNumber string `json:"promptPayNumber"`
	AccountName     string `json:"accountName"`
	AccountNumber   string `json:"accountNumber"`

	MinutesPerQueue int    `json:"minutesPerQueue"`
	AutoResetTime   string `json:"autoResetTime"` // "HH:mm" — advisory; reset จริงเกิด lazy ตอนออกคิวแรกของวันใหม่

	CurrentDayKey   string `json:"currentDayKey"` // "YYYY-MM-DD" วันที่ counter ใช้ได้
	NextQueueNumber int    `json:"nextQueueNumber"`
}
