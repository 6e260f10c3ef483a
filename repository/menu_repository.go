package repository

import (
	"github.com/Sittipanpee/dessert-site/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func sortedGroups(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

func (r *MenuRepository) List() ([]entity.Menu, error) {
	menus := make([]entity.Menu, 0)
	err := r.DB.
		Preload("OptionGroups", sortedGroups).
		Preload("OptionGroups.Choices", sortedGroups).
		Find(&menus).Error
	return menus, err
}

// GetWithOptions ดึงเมนูเดียวพร้อม option groups ใช้ตอนคิดราคา
func (r *MenuRepository) GetWithOptions(id uint) (*entity.Menu, error) {
	var m entity.Menu
	err := r.DB.
		Preload("OptionGroups", sortedGroups).
		Preload("OptionGroups.Choices", sortedGroups).
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}
