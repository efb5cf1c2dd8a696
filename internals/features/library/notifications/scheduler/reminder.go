package scheduler

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	loanModel "perpustakaanku_backend/internals/features/library/loans/model"
	notifModel "perpustakaanku_backend/internals/features/library/notifications/model"
	notifService "perpustakaanku_backend/internals/features/library/notifications/service"
	policyService "perpustakaanku_backend/internals/features/library/policy/service"
)

// StartLoanReminderScheduler: sekali sehari terbitkan pengingat jatuh
// tempo dekat + tunggakan. Dedupe per loan per hari lewat EmittedToday;
// status overdue tidak pernah ditulis ke tabel loans, cuma dibaca
// sebagai proyeksi tanggal.
func StartLoanReminderScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[REMINDER] Menjalankan pengingat jatuh tempo...")
			runLoanReminders(db)
			time.Sleep(24 * time.Hour)
		}
	}()
}

func runLoanReminders(db *gorm.DB) {
	pol, err := policyService.GetActivePolicy(db)
	if err != nil {
		log.Printf("[REMINDER ERROR] Gagal muat policy: %v", err)
		return
	}
	now := time.Now()

	// Jatuh tempo dalam N hari ke depan
	dueSoonBefore := now.AddDate(0, 0, pol.PolicyDueSoonNoticeDays)
	var dueSoon []loanModel.LoanModel
	if err := db.
		Where("loan_status = ? AND loan_due_date >= ? AND loan_due_date <= ?",
			loanModel.LoanStatusActive, now, dueSoonBefore).
		Limit(500).
		Find(&dueSoon).Error; err != nil {
		log.Printf("[REMINDER ERROR] Gagal ambil loan due-soon: %v", err)
	} else {
		sent := 0
		for i := range dueSoon {
			l := &dueSoon[i]
			if notifService.EmittedToday(db, l.LoanMemberID, notifModel.NotificationLoanDueSoon, l.LoanID) {
				continue
			}
			notifService.Emit(db, l.LoanMemberID,
				notifModel.NotificationLoanDueSoon,
				"Pinjaman segera jatuh tempo",
				fmt.Sprintf("Pinjaman Anda jatuh tempo %s. Kembalikan atau perpanjang sebelum terkena denda.",
					l.LoanDueDate.Format("02 Jan 2006")),
				map[string]any{
					"loan_id":  l.LoanID.String(),
					"book_id":  l.LoanBookID.String(),
					"due_date": l.LoanDueDate.Format(time.RFC3339),
				})
			sent++
		}
		log.Printf("[REMINDER] %d pengingat due-soon diterbitkan", sent)
	}

	// Sudah lewat jatuh tempo (proyeksi overdue)
	var overdue []loanModel.LoanModel
	if err := db.
		Where("loan_status = ? AND loan_due_date < ?", loanModel.LoanStatusActive, now).
		Limit(500).
		Find(&overdue).Error; err != nil {
		log.Printf("[REMINDER ERROR] Gagal ambil loan overdue: %v", err)
		return
	}
	sent := 0
	for i := range overdue {
		l := &overdue[i]
		if notifService.EmittedToday(db, l.LoanMemberID, notifModel.NotificationLoanOverdue, l.LoanID) {
			continue
		}
		notifService.Emit(db, l.LoanMemberID,
			notifModel.NotificationLoanOverdue,
			"Pinjaman terlambat dikembalikan",
			"Pinjaman Anda sudah lewat jatuh tempo dan denda berjalan. Segera kembalikan.",
			map[string]any{
				"loan_id":  l.LoanID.String(),
				"book_id":  l.LoanBookID.String(),
				"due_date": l.LoanDueDate.Format(time.RFC3339),
			})
		sent++
	}
	log.Printf("[REMINDER] %d pengingat overdue diterbitkan", sent)
}
