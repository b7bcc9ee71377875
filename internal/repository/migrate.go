package repository

import (
	"gorm.io/gorm"

	"buildboard/internal/domain"
)

// Migrate applies the schema for every persisted table. The row models are
// private to this package, so migration lives here too.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&companyModel{},
		&userModel{},
		&projectModel{},
		&taskModel{},
		&paymentScheduleModel{},
		&paymentInstallmentModel{},
		&paymentReceiptModel{},
		&paymentDocumentModel{},
		&photoModel{},
		&notificationModel{},
		&notificationSettingModel{},
		&domain.Upload{},
	)
}
