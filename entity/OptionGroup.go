package entity

const (
	SelectionSingle   = "single"
	SelectionMultiple = "multiple"
	SelectionLimit    = "limit"
)

const (
	PricingFixed = "fixed" // ราคาแทนที่ราคาฐาน
	PricingAddon = "addon" // ราคาบวกเพิ่มจากราคาฐาน
)

type OptionGroup struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	MenuID uint `gorm:"index" json:"-"`

	Name          string `json:"name"`
	SelectionType string `json:"selectionType"`         // single | multiple | limit
	SelectLimit   int    `json:"selectLimit,omitempty"` // ใช้เมื่อ selectionType = limit
	PricingType   string `json:"pricingType"`           // fixed | addon
	SortOrder     int    `json:"-"`

	Choices []Choice `gorm:"foreignKey:GroupID" json:"choices"`
}
