package services

import (
	"sort"

	"github.com/Sittipanpee/dessert-site/entity"
)

// UnitPrice คิดราคาต่อหน่วยจากราคาฐานของเมนู + option ที่เลือก
// selected เป็น map groupId -> choiceIds
//
// - กลุ่ม fixed: แทนที่ราคาทั้งก้อนด้วยราคา choice ที่เลือก (ไม่ใช่บวกเพิ่ม)
//   ถ้ามี fixed หลายกลุ่ม กลุ่มหลังสุดตามลำดับประกาศชนะ
// - กลุ่ม addon: บวกราคา choice ที่เลือกทุกตัวเข้าราคารวม
//
// selection ที่ไม่รู้จักหรือว่างถูกข้ามเฉย ๆ ฟังก์ชันนี้ไม่มีทาง fail
// (การบังคับ single/limit เป็นหน้าที่ของฝั่ง UI)
func UnitPrice(m *entity.Menu, selected map[uint][]uint) int64 {
	price := m.BasePrice

	groups := make([]entity.OptionGroup, len(m.OptionGroups))
	copy(groups, m.OptionGroups)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].SortOrder < groups[j].SortOrder
	})

	for _, g := range groups {
		ids := selected[g.ID]
		if len(ids) == 0 {
			continue
		}
		switch g.PricingType {
		case entity.PricingFixed:
			// ไล่ตามลำดับ choice — ตัวหลังสุดที่ถูกเลือกชนะ
			for _, ch := range g.Choices {
				if containsID(ids, ch.ID) {
					price = ch.Price
				}
			}
		case entity.PricingAddon:
			for _, ch := range g.Choices {
				if containsID(ids, ch.ID) {
					price += ch.Price
				}
			}
		}
	}
	return price
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
