package entity

type Choice struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	GroupID uint `gorm:"index" json:"-"`

	Name      string `json:"name"`
	Price     int64  `json:"price"`
	SortOrder int    `json:"-"`
}
