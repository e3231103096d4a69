package service

import (
	"fmt"
	"testing"

	"github.com/blastmusic247/blast-gear-full/internal/model"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a uniquely named shared in-memory sqlite database so each
// test gets isolated state while gorm's pooled connections still see the
// same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal("open test database:", err)
	}

	if err := db.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.PromoCode{},
		&model.GalleryImage{},
		&model.ContactMessage{},
	); err != nil {
		t.Fatal("migrate test database:", err)
	}

	return db
}

type noopMailClient struct{}

func (noopMailClient) SendAdminOrderNotification(*model.Order) error    { return nil }
func (noopMailClient) SendCustomerOrderConfirmation(*model.Order) error { return nil }
