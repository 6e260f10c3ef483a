package entity

type Menu struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BasePrice   int64  `json:"price"`
	IsPopular   bool   `json:"isPopular"`
	ImageURL    string `json:"imageUrl"`

	OptionGroups []OptionGroup `gorm:"foreignKey:MenuID" json:"optionGroups,omitempty"`
}
