package services

import (
	"errors"
	"time"

	"github.com/anqnd2510/tray-homework/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionService is the append-only ledger of payment outcomes. There are
// no update or delete paths; corrections are new rows.
type TransactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// Record appends one ledger row. It takes the caller's transaction handle so
// the row commits together with the payment and subscription writes that
// triggered it.
func (s *TransactionService) Record(tx *gorm.DB, userID, paymentID uuid.UUID, transID *int64, status string) (*models.Transaction, error) {
	transaction := models.Transaction{
		UserID:          userID,
		PaymentID:       paymentID,
		TransID:         transID,
		TransactionDate: time.Now(),
		Status:          status,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *TransactionService) All() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *TransactionService) ByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.Preload("User").Preload("Payment").First(&transaction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (s *TransactionService) ByUser(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
