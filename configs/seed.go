package configs

import (
	"log"

	"github.com/Sittipanpee/dessert-site/entity"
	"github.com/Sittipanpee/dessert-site/utils"
	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin passphrase ครั้งแรก (ถ้ายังไม่มี)
func SeedAdmin(passphrase string) error {
	db := DB()
	if passphrase == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_PASSPHRASE")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&entity.Admin{PassphraseHash: string(hash)}).Error
}

// Seed queue config แถวเดียว (id=1) ถ้ายังไม่มี
func SeedQueueConfig() error {
	db := DB()
	cfg := entity.QueueConfig{
		ID:              1,
		PromptPayNumber: "0812345678",
		MinutesPerQueue: 5,
		AutoResetTime:   "06:00",
		CurrentDayKey:   utils.TodayKey(),
		NextQueueNumber: 1,
	}
	return db.FirstOrCreate(&cfg, entity.QueueConfig{ID: 1}).Error
}

// Seed เมนูตัวอย่างของร้าน ใช้ตอนยังไม่มีข้อมูล
func SeedMenu() error {
	db := DB()

	var count int64
	db.Model(&entity.Menu{}).Count(&count)
	if count > 0 {
		return nil
	}

	menus := []entity.Menu{
		{
			Name:        "บิงซูมะม่วง",
			Description: "น้ำแข็งเกล็ดหิมะราดมะม่วงน้ำดอกไม้",
			BasePrice:   100,
			IsPopular:   true,
			OptionGroups: []entity.OptionGroup{
				{
					Name:          "ขนาด",
					SelectionType: entity.SelectionSingle,
					PricingType:   entity.PricingFixed,
					SortOrder:     1,
					Choices: []entity.Choice{
						{Name: "ธรรมดา", Price: 100, SortOrder: 1},
						{Name: "กลาง", Price: 120, SortOrder: 2},
						{Name: "ใหญ่", Price: 150, SortOrder: 3},
					},
				},
				{
					Name:          "ท็อปปิ้ง",
					SelectionType: entity.SelectionLimit,
					SelectLimit:   3,
					PricingType:   entity.PricingAddon,
					SortOrder:     2,
					Choices: []entity.Choice{
						{Name: "ข้าวเหนียว", Price: 20, SortOrder: 1},
						{Name: "ไอศกรีมกะทิ", Price: 25, SortOrder: 2},
						{Name: "ฟักทองเชื่อม", Price: 15, SortOrder: 3},
					},
				},
			},
		},
		{
			Name:        "ขนมปังปิ้งเนยนม",
			Description: "ขนมปังหนานุ่มปิ้งถ่าน",
			BasePrice:   45,
			OptionGroups: []entity.OptionGroup{
				{
					Name:          "ซอสเพิ่ม",
					SelectionType: entity.SelectionMultiple,
					PricingType:   entity.PricingAddon,
					SortOrder:     1,
					Choices: []entity.Choice{
						{Name: "นมข้น", Price: 5, SortOrder: 1},
						{Name: "ช็อกโกแลต", Price: 10, SortOrder: 2},
					},
				},
			},
		},
		{
			Name:        "เฉาก๊วยนมสด",
			Description: "เฉาก๊วยเหนียวนุ่มในนมสดเย็น",
			BasePrice:   35,
		},
	}

	for i := range menus {
		if err := db.Create(&menus[i]).Error; err != nil {
			return err
		}
	}
	log.Println("✅ Demo menu seeded")
	return nil
}
