package repository

import (
	"errors"

	"github.com/Sittipanpee/dessert-site/entity"
	"github.com/Sittipanpee/dessert-site/utils"
	"gorm.io/gorm"
)

type QueueConfigRepository struct {
	DB *gorm.DB
}

func NewQueueConfigRepository(db *gorm.DB) *QueueConfigRepository {
	return &QueueConfigRepository{DB: db}
}

// DefaultQueueConfig ค่าเริ่มต้นของร้าน counter เริ่มที่ 1 วันนี้
func DefaultQueueConfig() *entity.QueueConfig {
	return &entity.QueueConfig{
		ID:              1,
		PromptPayNumber: "0812345678",
		MinutesPerQueue: 5,
		AutoResetTime:   "06:00",
		CurrentDayKey:   utils.TodayKey(),
		NextQueueNumber: 1,
	}
}

// Get อ่านแถว config (id=1) ถ้ายังไม่มีคืน default ไม่ถือเป็น error
// ส่ง tx เป็น nil ได้ถ้าไม่ได้อยู่ใน transaction
func (r *QueueConfigRepository) Get(tx *gorm.DB) (*entity.QueueConfig, error) {
	if tx == nil {
		tx = r.DB
	}
	var cfg entity.QueueConfig
	if err := tx.First(&cfg, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultQueueConfig(), nil
		}
		return nil, err
	}
	return &cfg, nil
}

// Save ทับทั้งแถว (last writer wins ไม่ merge)
func (r *QueueConfigRepository) Save(tx *gorm.DB, cfg *entity.QueueConfig) error {
	if tx == nil {
		tx = r.DB
	}
	cfg.ID = 1
	return tx.Save(cfg).Error
}
