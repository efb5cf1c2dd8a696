// internals/features/library/loans/service/lifecycle.go
//
// Engine siklus pinjam: issue → active → (overdue: proyeksi) → returned.
// Semua mutasi per-copy/per-judul dijalankan dalam transaksi dengan row
// lock (FOR UPDATE) — dua request bersamaan atas copy/judul yang sama
// diserialisasi, tidak mungkin sama-sama lolos baca stok yang sama.
package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookModel "perpustakaanku_backend/internals/features/library/books/model"
	bookService "perpustakaanku_backend/internals/features/library/books/service"
	fineModel "perpustakaanku_backend/internals/features/library/fines/model"
	model "perpustakaanku_backend/internals/features/library/loans/model"
	memberModel "perpustakaanku_backend/internals/features/library/members/model"
	notifModel "perpustakaanku_backend/internals/features/library/notifications/model"
	notifService "perpustakaanku_backend/internals/features/library/notifications/service"
	policyService "perpustakaanku_backend/internals/features/library/policy/service"
	resService "perpustakaanku_backend/internals/features/library/reservations/service"
)

type LoanService struct {
	DB           *gorm.DB
	Clock        Clock
	Reservations *resService.ReservationService
}

func NewLoanService(db *gorm.DB) *LoanService {
	return &LoanService{
		DB:           db,
		Clock:        RealClock{},
		Reservations: resService.NewReservationService(db),
	}
}

func (s *LoanService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now().UTC()
}

/* =========================
   IssueBook
   ========================= */

type IssueRequest struct {
	MemberID   uuid.UUID
	CopyID     uuid.UUID
	PeriodDays int
	IssueDate  *time.Time // nil = jam server
}

type IssueResult struct {
	Loan     *model.LoanModel
	Warnings []string
}

func (s *LoanService) IssueBook(req IssueRequest) (*IssueResult, error) {
	var result IssueResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		pol, err := policyService.GetActivePolicy(tx)
		if err != nil {
			return errors.Wrap(err, "load policy")
		}

		// Lock copy → serialize per eksemplar
		var cp bookModel.BookCopyModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cp, "copy_id = ?", req.CopyID).Error; err != nil {
			if errors.Cause(err) == gorm.ErrRecordNotFound {
				return ErrCopyUnavailable
			}
			return errors.Wrap(err, "load copy")
		}
		if cp.CopyStatus != bookModel.CopyStatusAvailable && cp.CopyStatus != bookModel.CopyStatusHeld {
			return ErrCopyUnavailable
		}

		// Lock buku → serialize per judul (stok + antrean)
		var book bookModel.BookModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, "book_id = ?", cp.CopyBookID).Error; err != nil {
			return errors.Wrap(err, "load book")
		}

		// Ready basi dibereskan sebelum menghitung gerbang reservasi
		if err := s.Reservations.ExpireReady(tx, book.BookID); err != nil {
			return err
		}

		var member memberModel.MemberModel
		memberFound := true
		if err := tx.First(&member, "member_id = ?", req.MemberID).Error; err != nil {
			if errors.Cause(err) == gorm.ErrRecordNotFound {
				memberFound = false
			} else {
				return errors.Wrap(err, "load member")
			}
		}

		var activeLoans, overdueLoans int64
		now := s.now()
		if memberFound {
			if err := tx.Model(&model.LoanModel{}).
				Where("loan_member_id = ? AND loan_status = ?", req.MemberID, model.LoanStatusActive).
				Count(&activeLoans).Error; err != nil {
				return errors.Wrap(err, "count active loans")
			}
			if err := tx.Model(&model.LoanModel{}).
				Where("loan_member_id = ? AND loan_status = ? AND loan_due_date < ?",
					req.MemberID, model.LoanStatusActive, now).
				Count(&overdueLoans).Error; err != nil {
				return errors.Wrap(err, "count overdue loans")
			}
		}

		readyForOthers, err := resService.ReadyForOthersCount(tx, book.BookID, req.MemberID)
		if err != nil {
			return err
		}

		warnings, err := CheckIssue(IssueCheck{
			MemberFound:     memberFound,
			MemberSuspended: memberFound && member.MemberStatus == memberModel.MemberStatusSuspended,
			ActiveLoans:     int(activeLoans),
			MaxLoans:        pol.MaxLoansFor(memberPtrOverride(&member, memberFound)),
			PeriodAllowed:   pol.AllowsPeriod(req.PeriodDays),
			AvailableCopies: book.BookAvailableCopies,
			ReadyForOthers:  int(readyForOthers),
			OverdueLoans:    int(overdueLoans),
		})
		if err != nil {
			return err
		}

		// Stok turun lewat guarded UPDATE (cek > 0 di-SQL, bukan di Go)
		if err := bookService.DecrementAvailable(tx, book.BookID); err != nil {
			if errors.Cause(err) == bookService.ErrNoAvailableCopy {
				return ErrCopyUnavailable
			}
			return err
		}
		if err := bookService.MarkCopyStatus(tx, cp.CopyID, bookModel.CopyStatusOnLoan); err != nil {
			return err
		}

		// Member yang datang menebus reservasinya sendiri
		if err := s.Reservations.Fulfill(tx, book.BookID, req.MemberID); err != nil {
			return err
		}

		issueAt := now
		if req.IssueDate != nil {
			issueAt = *req.IssueDate
		}
		loan := model.LoanModel{
			LoanMemberID:    req.MemberID,
			LoanBookID:      book.BookID,
			LoanCopyID:      cp.CopyID,
			LoanIssueDate:   issueAt,
			LoanDueDate:     DueDateFor(issueAt, req.PeriodDays),
			LoanPeriodDays:  req.PeriodDays,
			LoanStatus:      model.LoanStatusActive,
			LoanFineSettled: true, // belum ada denda
		}
		if err := tx.Create(&loan).Error; err != nil {
			return errors.Wrap(err, "create loan")
		}

		notifService.Emit(tx, req.MemberID,
			notifModel.NotificationLoanIssued,
			"Peminjaman tercatat",
			"Peminjaman buku Anda berhasil dicatat. Perhatikan tanggal jatuh tempo.",
			map[string]any{
				"loan_id":  loan.LoanID.String(),
				"book_id":  book.BookID.String(),
				"due_date": loan.LoanDueDate.Format(time.RFC3339),
			})

		result = IssueResult{Loan: &loan, Warnings: warnings}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func memberPtrOverride(m *memberModel.MemberModel, found bool) *int {
	if !found {
		return nil
	}
	return m.MemberMaxLoansOverride
}

/* =========================
   RenewLoan
   ========================= */

type RenewResult struct {
	Loan *model.LoanModel
}

func (s *LoanService) RenewLoan(loanID uuid.UUID) (*RenewResult, error) {
	var result RenewResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		pol, err := policyService.GetActivePolicy(tx)
		if err != nil {
			return errors.Wrap(err, "load policy")
		}

		var loan model.LoanModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&loan, "loan_id = ?", loanID).Error; err != nil {
			if errors.Cause(err) == gorm.ErrRecordNotFound {
				return ErrLoanNotFound
			}
			return errors.Wrap(err, "load loan")
		}

		// Serialize per judul + bereskan Ready basi sebelum gerbang reservasi
		var book bookModel.BookModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, "book_id = ?", loan.LoanBookID).Error; err != nil {
			return errors.Wrap(err, "load book")
		}
		if err := s.Reservations.ExpireReady(tx, book.BookID); err != nil {
			return err
		}

		queued, err := resService.QueuedCount(tx, book.BookID)
		if err != nil {
			return err
		}

		var unpaidFines int64
		if err := tx.Model(&fineModel.FineModel{}).
			Where("fine_member_id = ? AND fine_status = ?", loan.LoanMemberID, fineModel.FineStatusUnpaid).
			Count(&unpaidFines).Error; err != nil {
			return errors.Wrap(err, "count unpaid fines")
		}

		if err := CheckRenew(RenewCheck{
			LoanStatus:      loan.LoanStatus,
			DueDate:         loan.LoanDueDate,
			AsOf:            s.now(),
			RenewalCount:    loan.LoanRenewalCount,
			MaxRenewals:     pol.PolicyMaxRenewals,
			QueuedWaiting:   int(queued),
			UnpaidFineCount: int(unpaidFines),
		}); err != nil {
			return err
		}

		// Self-transition Active→Active: due maju, counter naik
		newDue := NextDueDate(loan.LoanDueDate, pol.PolicyRenewalExtensionDays)
		if err := tx.Model(&loan).UpdateColumns(map[string]interface{}{
			"loan_due_date":      newDue,
			"loan_renewal_count": gorm.Expr("loan_renewal_count + 1"),
		}).Error; err != nil {
			return errors.Wrap(err, "apply renewal")
		}
		loan.LoanDueDate = newDue
		loan.LoanRenewalCount++

		result = RenewResult{Loan: &loan}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

/* =========================
   ReturnBook
   ========================= */

type ReturnRequest struct {
	LoanID     uuid.UUID
	ReturnDate *time.Time // nil = jam server
	Condition  *string    // excellent|good|fair|poor|damaged
	FinePaid   bool       // denda dibayar tunai di meja
	FineWaived bool       // denda diputihkan petugas
	WaiveNote  *string
}

type ReturnResult struct {
	Loan       *model.LoanModel
	FineAmount float64
	Warnings   []string
}

func (s *LoanService) ReturnBook(req ReturnRequest) (*ReturnResult, error) {
	var result ReturnResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		pol, err := policyService.GetActivePolicy(tx)
		if err != nil {
			return errors.Wrap(err, "load policy")
		}

		var loan model.LoanModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&loan, "loan_id = ?", req.LoanID).Error; err != nil {
			if errors.Cause(err) == gorm.ErrRecordNotFound {
				return ErrLoanNotFound
			}
			return errors.Wrap(err, "load loan")
		}
		if err := CheckReturn(loan.LoanStatus); err != nil {
			return err
		}

		var book bookModel.BookModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, "book_id = ?", loan.LoanBookID).Error; err != nil {
			return errors.Wrap(err, "load book")
		}

		var warnings []string
		returnAt := s.now()
		if req.ReturnDate != nil {
			returnAt = *req.ReturnDate
		}
		// Tanggal kembali sebelum tanggal pinjam = jam tidak sinkron;
		// clamp dan kasih advisory alih-alih denda aneh.
		if returnAt.Before(loan.LoanIssueDate) {
			returnAt = loan.LoanIssueDate
			warnings = append(warnings, WarnClockSkew)
		}

		fine, skewed := CalculateFine(loan.LoanDueDate, returnAt, pol.PolicyFinePerDay)
		if skewed {
			warnings = append(warnings, WarnClockSkew)
		}

		// Gerbang finansial: denda harus lunas/diputihkan sebelum
		// pengembalian selesai
		if fine > 0 {
			var paidSum float64
			if err := tx.Model(&fineModel.FineModel{}).
				Where("fine_loan_id = ? AND fine_status = ?", loan.LoanID, fineModel.FineStatusPaid).
				Select("COALESCE(SUM(fine_amount), 0)").
				Scan(&paidSum).Error; err != nil {
				return errors.Wrap(err, "sum paid fines")
			}

			settle, err := CheckSettlement(SettlementCheck{
				Fine:       fine,
				PaidSum:    paidSum,
				FinePaid:   req.FinePaid,
				FineWaived: req.FineWaived,
			})
			if err != nil {
				return err
			}

			switch settle.Action {
			case SettleWaiver:
				method := fineModel.FineMethodWaiver
				now := s.now()
				f := fineModel.FineModel{
					FineLoanID:   loan.LoanID,
					FineMemberID: loan.LoanMemberID,
					FineAmount:   settle.Outstanding,
					FineStatus:   fineModel.FineStatusWaived,
					FineMethod:   &method,
					FinePaidAt:   &now,
					FineNote:     req.WaiveNote,
				}
				if err := tx.Create(&f).Error; err != nil {
					return errors.Wrap(err, "record waived fine")
				}
			case SettleCash:
				method := fineModel.FineMethodCash
				now := s.now()
				f := fineModel.FineModel{
					FineLoanID:   loan.LoanID,
					FineMemberID: loan.LoanMemberID,
					FineAmount:   settle.Outstanding,
					FineStatus:   fineModel.FineStatusPaid,
					FineMethod:   &method,
					FinePaidAt:   &now,
				}
				if err := tx.Create(&f).Error; err != nil {
					return errors.Wrap(err, "record cash fine")
				}
			}

			notifService.Emit(tx, loan.LoanMemberID,
				notifModel.NotificationFineAssessed,
				"Denda keterlambatan",
				"Denda keterlambatan pengembalian telah dicatat dan diselesaikan.",
				map[string]any{
					"loan_id":     loan.LoanID.String(),
					"fine_amount": fine,
				})
		}

		// Transisi Active/Overdue → Returned
		cols := map[string]interface{}{
			"loan_status":       model.LoanStatusReturned,
			"loan_return_date":  returnAt,
			"loan_fine_amount":  fine,
			"loan_fine_settled": true,
		}
		if req.Condition != nil {
			cols["loan_return_condition"] = *req.Condition
		}
		if err := tx.Model(&loan).UpdateColumns(cols).Error; err != nil {
			return errors.Wrap(err, "apply return")
		}
		loan.LoanStatus = model.LoanStatusReturned
		loan.LoanReturnDate = &returnAt
		loan.LoanFineAmount = fine
		loan.LoanFineSettled = true
		loan.LoanReturnCondition = req.Condition

		// Copy kembali ke rak + stok naik
		if err := bookService.MarkCopyStatus(tx, loan.LoanCopyID, bookModel.CopyStatusAvailable); err != nil {
			return err
		}
		if req.Condition != nil {
			if err := tx.Model(&bookModel.BookCopyModel{}).
				Where("copy_id = ?", loan.LoanCopyID).
				UpdateColumn("copy_condition", *req.Condition).Error; err != nil {
				return errors.Wrap(err, "record copy condition")
			}
		}
		if err := bookService.IncrementAvailable(tx, book.BookID); err != nil {
			// increment gagal = total/available tidak konsisten; tetap error
			return err
		}

		// Copy bebas → kepala antrean naik jadi Ready + timer hold jalan
		if err := s.Reservations.PromoteHead(tx, book.BookID, pol.PolicyReservationHoldDays); err != nil {
			return err
		}

		result = ReturnResult{Loan: &loan, FineAmount: fine, Warnings: warnings}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
