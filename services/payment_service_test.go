package services

import (
	"testing"

	"github.com/anqnd2510/tray-homework/payments"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Services below are built without a database handle: every asserted path must
// fail before any persistence is attempted.

func TestHandleNotificationRejectsBadSignatureBeforeAnyWrite(t *testing.T) {
	codec := payments.NewSignatureCodec("the-real-secret")
	svc := NewPaymentService(nil, nil, codec, NewPlanCatalog(), nil)

	attacker := payments.NewSignatureCodec("guessed-secret")
	n := payments.Notification{
		PartnerCode: "MOMO",
		OrderID:     "MOMO1700000000000",
		RequestID:   "MOMO1700000000000",
		Amount:      50000,
		TransID:     123456789,
		ResultCode:  0,
		Message:     "Successful.",
		UserID:      uuid.New().String(),
		PaymentID:   uuid.New().String(),
	}
	n.Signature = attacker.Sign(n.RawSignature())

	err := svc.HandleNotification(n)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestHandleNotificationRejectsTamperedPayload(t *testing.T) {
	codec := payments.NewSignatureCodec("the-real-secret")
	svc := NewPaymentService(nil, nil, codec, NewPlanCatalog(), nil)

	n := payments.Notification{
		PartnerCode: "MOMO",
		OrderID:     "MOMO1700000000000",
		RequestID:   "MOMO1700000000000",
		Amount:      50000,
		TransID:     123456789,
		ResultCode:  0,
		UserID:      uuid.New().String(),
		PaymentID:   uuid.New().String(),
	}
	n.Signature = codec.Sign(n.RawSignature())

	// Raising the amount after signing must invalidate the notification even
	// though its result code still says success.
	n.Amount = 1000000

	err := svc.HandleNotification(n)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestHandleNotificationRejectsMalformedIdentifiers(t *testing.T) {
	codec := payments.NewSignatureCodec("secret")
	svc := NewPaymentService(nil, nil, codec, NewPlanCatalog(), nil)

	n := payments.Notification{
		PartnerCode: "MOMO",
		OrderID:     "MOMO1",
		RequestID:   "MOMO1",
		Amount:      50000,
		TransID:     1,
		ResultCode:  0,
		UserID:      "not-a-uuid",
		PaymentID:   uuid.New().String(),
	}
	n.Signature = codec.Sign(n.RawSignature())

	err := svc.HandleNotification(n)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreatePaymentRejectsUnknownPackageBeforeAnyWrite(t *testing.T) {
	svc := NewPaymentService(nil, nil, payments.NewSignatureCodec("secret"), NewPlanCatalog(), nil)

	_, _, err := svc.CreatePayment(uuid.New(), "biweekly")
	assert.ErrorIs(t, err, ErrInvalidPackage)
}

func TestInitiatePaymentRejectsUnknownPackage(t *testing.T) {
	svc := NewPaymentService(nil, nil, payments.NewSignatureCodec("secret"), NewPlanCatalog(), nil)

	_, err := svc.InitiatePayment(uuid.New(), 50000, "lifetime")
	assert.ErrorIs(t, err, ErrInvalidPackage)
}

func TestInitiatePaymentRejectsAmountMismatch(t *testing.T) {
	svc := NewPaymentService(nil, nil, payments.NewSignatureCodec("secret"), NewPlanCatalog(), nil)

	_, err := svc.InitiatePayment(uuid.New(), 1, PackageWeekly)
	assert.ErrorIs(t, err, ErrInvalidPackage)
}
