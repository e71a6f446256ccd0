package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/anqnd2510/tray-homework/models"
	"github.com/anqnd2510/tray-homework/notifications"
	"github.com/anqnd2510/tray-homework/payments"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentService owns the payment lifecycle: initiate against the gateway,
// record the pending payment, verify and reconcile the asynchronous
// notification, and activate the user's subscription exactly once.
type PaymentService struct {
	db      *gorm.DB
	momo    *payments.MomoClient
	codec   *payments.SignatureCodec
	catalog *PlanCatalog
	ledger  *TransactionService
}

func NewPaymentService(db *gorm.DB, momo *payments.MomoClient, codec *payments.SignatureCodec, catalog *PlanCatalog, ledger *TransactionService) *PaymentService {
	return &PaymentService{
		db:      db,
		momo:    momo,
		codec:   codec,
		catalog: catalog,
		ledger:  ledger,
	}
}

// InitiatePayment signs and sends the payment-initiation request, then records
// a Pending payment carrying the gateway order id. The payment row is written
// only after the gateway call succeeds, so a gateway failure leaves no
// orphaned row behind.
func (s *PaymentService) InitiatePayment(userID uuid.UUID, amount int64, pkg string) (*payments.PaymentResponse, error) {
	price, err := s.catalog.PriceOf(pkg)
	if err != nil {
		return nil, ErrInvalidPackage
	}
	if amount != price {
		return nil, fmt.Errorf("%w: amount %d does not match the %s package price", ErrInvalidPackage, amount, pkg)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	orderID := s.momo.NewOrderID()
	requestID := orderID

	resp, err := s.momo.Initiate(orderID, requestID, amount)
	if err != nil {
		return nil, fmt.Errorf("payment initiation failed: %w", err)
	}

	payment := models.Payment{
		UserID:    userID,
		Amount:    amount,
		Package:   pkg,
		Status:    models.PaymentStatusPending,
		OrderID:   &orderID,
		RequestID: &requestID,
		Date:      time.Now(),
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to record pending payment: %v", err)
	}

	return resp, nil
}

// HandleNotification reconciles a gateway notification. The signature check is
// the sole authenticity gate for this endpoint and runs before any state is
// touched; fields the signature does not cover are checked against the stored
// payment row. Reconciliation is atomic: the transaction row, the payment status
// and the subscription change all land together or not at all, and a replayed
// trans_id is a no-op.
func (s *PaymentService) HandleNotification(n payments.Notification) error {
	if !s.codec.Verify(n.RawSignature(), n.Signature) {
		return ErrInvalidSignature
	}

	userID, err := uuid.Parse(n.UserID)
	if err != nil {
		return fmt.Errorf("%w: malformed userId", ErrUserNotFound)
	}
	paymentID, err := uuid.Parse(n.PaymentID)
	if err != nil {
		return fmt.Errorf("%w: malformed paymentId", ErrPaymentNotFound)
	}

	status := models.TransactionStatusFailed
	paymentStatus := models.PaymentStatusFailed
	if n.ResultCode == 0 {
		status = models.TransactionStatusSuccess
		paymentStatus = models.PaymentStatusPaid
	} else {
		log.Printf("MoMo notification reported failure for order %s: code %d, message %q", n.OrderID, n.ResultCode, n.Message)
	}

	var user models.User
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Row lock serializes subscription writes for this user against a
		// concurrent createPayment or a double-delivered webhook.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var payment models.Payment
		if err := tx.First(&payment, "id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		// userId and paymentId are not covered by the signature, so the loaded
		// payment must corroborate the signed order and amount before anything
		// is written. A captured notification replayed against another payment
		// fails here.
		if payment.UserID != userID || payment.Amount != n.Amount ||
			payment.OrderID == nil || *payment.OrderID != n.OrderID {
			return ErrPaymentMismatch
		}

		var replayed int64
		if err := tx.Model(&models.Transaction{}).Where("trans_id = ?", n.TransID).Count(&replayed).Error; err != nil {
			return err
		}
		if replayed > 0 {
			return ErrDuplicateNotification
		}

		if _, err := s.ledger.Record(tx, userID, payment.ID, &n.TransID, status); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateNotification
			}
			return err
		}

		payment.Status = paymentStatus
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		if status == models.TransactionStatusSuccess {
			expiration, err := s.catalog.ExpirationFrom(time.Now(), payment.Package)
			if err != nil {
				return err
			}
			user.SubscriptionPackage = &payment.Package
			user.SubscriptionExpiresAt = &expiration
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if status == models.TransactionStatusSuccess {
		go notifications.SendEmail(user.Username, user.Email, "Your Subscription is Active!",
			"<h1>Payment Confirmed</h1><p>Your payment was received and your subscription is now active.</p>")
	}

	return nil
}

// CreatePayment is the synchronous purchase path with no gateway involved. The
// subscription update, the payment row and the ledger row are written
// all-or-nothing.
func (s *PaymentService) CreatePayment(userID uuid.UUID, pkg string) (*models.Payment, time.Time, error) {
	price, err := s.catalog.PriceOf(pkg)
	if err != nil {
		return nil, time.Time{}, ErrInvalidPackage
	}

	now := time.Now()
	expiration, err := s.catalog.ExpirationFrom(now, pkg)
	if err != nil {
		return nil, time.Time{}, ErrInvalidPackage
	}

	var payment models.Payment
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		user.SubscriptionPackage = &pkg
		user.SubscriptionExpiresAt = &expiration
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		payment = models.Payment{
			UserID:  userID,
			Amount:  price,
			Package: pkg,
			Status:  models.PaymentStatusPaid,
			Date:    now,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if _, err := s.ledger.Record(tx, userID, payment.ID, nil, models.TransactionStatusSuccess); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, time.Time{}, err
	}

	return &payment, expiration, nil
}

// CheckPaymentStatus reports whether a Paid payment exists for the user. Pure
// read, no side effects.
func (s *PaymentService) CheckPaymentStatus(userID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Payment{}).
		Where("user_id = ? AND status = ?", userID, models.PaymentStatusPaid).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
