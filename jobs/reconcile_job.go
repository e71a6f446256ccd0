package jobs

import (
	"log"
	"time"

	"github.com/anqnd2510/tray-homework/database"
	"github.com/anqnd2510/tray-homework/models"
)

// pendingPaymentCutoff is how long an initiated payment may sit Pending before
// it is considered abandoned. MoMo delivers its IPN within minutes; anything
// older than this never got one.
const pendingPaymentCutoff = 24 * time.Hour

// ExpireStalePayments fails Pending payments whose notification never arrived,
// so checkPaymentStatus and the admin views reflect gateway reality.
func ExpireStalePayments() {
	log.Println("Running job: ExpireStalePayments...")

	cutoff := time.Now().Add(-pendingPaymentCutoff)

	result := database.DB.Model(&models.Payment{}).
		Where("status = ? AND created_at < ?", models.PaymentStatusPending, cutoff).
		Update("status", models.PaymentStatusFailed)

	if result.Error != nil {
		log.Printf("🔥 Failed to expire stale payments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Expired %d stale pending payment(s)", result.RowsAffected)
	}
}
