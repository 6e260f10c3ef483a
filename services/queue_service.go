package services

import (
	"sync"

	"github.com/Sittipanpee/dessert-site/entity"
	"github.com/Sittipanpee/dessert-site/repository"
	"github.com/Sittipanpee/dessert-site/utils"
	"gorm.io/gorm"
)

// QueueService เป็นเจ้าของ counter เลขคิวประจำวัน
// read-increment-write บนแถว config ต้องถือ mu เสมอ ห้ามเขียนข้าม lock
type QueueService struct {
	DB   *gorm.DB
	Repo *repository.QueueConfigRepository

	mu sync.Mutex
}

func NewQueueService(db *gorm.DB, repo *repository.QueueConfigRepository) *QueueService {
	return &QueueService{DB: db, Repo: repo}
}

func (s *QueueService) Config() (*entity.QueueConfig, error) {
	return s.Repo.Get(nil)
}

// SaveConfig เขียนทับทั้งแถวจากฟอร์มตั้งค่า admin
func (s *QueueService) SaveConfig(cfg *entity.QueueConfig) (*entity.QueueConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Repo.Save(nil, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Reset ตั้ง counter กลับ 1 ของวันนี้ ปุ่ม reset ฝั่ง admin เรียกตรง ๆ
// แยกจาก rollover อัตโนมัติใน issueNumber
func (s *QueueService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, err := s.Repo.Get(nil)
	if err != nil {
		return err
	}
	cfg.NextQueueNumber = 1
	cfg.CurrentDayKey = utils.TodayKey()
	return s.Repo.Save(nil, cfg)
}

// issueNumber ออกเลขคิวถัดไปใน tx ที่เปิดอยู่
// วันใน config ไม่ตรงกับวันนี้ → เริ่มนับ 1 ใหม่ (lazy rollover)
// caller ต้องถือ s.mu ครอบทั้ง transaction ที่เรียกฟังก์ชันนี้
func (s *QueueService) issueNumber(tx *gorm.DB, today string) (int, error) {
	cfg, err := s.Repo.Get(tx)
	if err != nil {
		return 0, err
	}
	if cfg.CurrentDayKey != today {
		cfg.CurrentDayKey = today
		cfg.NextQueueNumber = 1
	}
	n := cfg.NextQueueNumber
	cfg.NextQueueNumber++
	if err := s.Repo.Save(tx, cfg); err != nil {
		return 0, err
	}
	return n, nil
}
