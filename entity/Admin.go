package entity

import (
	"gorm.io/gorm"
)

// Admin มีคนเดียว ใช้ passphrase อย่างเดียว ไม่มีระบบ user
type Admin struct {
	gorm.Model
	PassphraseHash string `json:"-"`
}
