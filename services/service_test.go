package services

import (
	"fmt"
	"testing"

	"github.com/Sittipanpee/dessert-site/entity"
	"github.com/Sittipanpee/dessert-site/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // in-memory sqlite ผูกกับ connection เดียว

	require.NoError(t, db.AutoMigrate(
		&entity.QueueConfig{},
		&entity.Menu{}, &entity.OptionGroup{}, &entity.Choice{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{},
	))
	return db
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	queue := NewQueueService(db, repository.NewQueueConfigRepository(db))
	return NewOrderService(db, repository.NewOrderRepository(db), queue, NewQueueEstimator())
}

func saveConfig(t *testing.T, db *gorm.DB, dayKey string, next int) {
	t.Helper()
	repo := repository.NewQueueConfigRepository(db)
	cfg := repository.DefaultQueueConfig()
	cfg.CurrentDayKey = dayKey
	cfg.NextQueueNumber = next
	require.NoError(t, repo.Save(nil, cfg))
}

func validCreateReq(name string) *CreateOrderReq {
	return &CreateOrderReq{
		CustomerName:  name,
		PaymentMethod: entity.PaymentCash,
		TotalPrice:    100,
		Items: []OrderItemIn{
			{MenuItemID: "menu-1", Name: "บิงซูมะม่วง", Price: 100, Quantity: 1},
		},
	}
}
