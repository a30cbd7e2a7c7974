package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"watchitup-backend/internal/domains/wallet/model"
	"watchitup-backend/internal/domains/wallet/repository"
)

type walletService struct {
	walletRepo repository.RepositoryInterface
}

func NewWalletService(walletRepo repository.RepositoryInterface) ServiceInterface {
	return &walletService{walletRepo: walletRepo}
}

// Credit appends a positive ledger entry. The (kind, referenceID) pair
// must be unique per wallet: a second credit for the same logical refund
// is rejected with ErrDuplicateReference rather than applied twice.
func (s *walletService) Credit(
	ctx context.Context,
	tx pgx.Tx,
	userID uuid.UUID,
	amount decimal.Decimal,
	kind, description string,
	referenceID uuid.UUID,
) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, model.ErrInvalidAmount
	}

	wallet, err := s.walletRepo.GetOrCreateForUpdateWithTx(ctx, tx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	duplicate, err := s.walletRepo.HasTransactionWithTx(ctx, tx, wallet.ID, kind, referenceID)
	if err != nil {
		return decimal.Zero, err
	}
	if duplicate {
		return decimal.Zero, model.ErrDuplicateReference
	}

	newBalance := wallet.Balance.Add(amount)
	txn := &model.WalletTransaction{
		ID:           uuid.New(),
		WalletID:     wallet.ID,
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: newBalance,
		Description:  description,
		ReferenceID:  referenceID,
	}
	if err := s.walletRepo.AppendWithTx(ctx, tx, txn); err != nil {
		return decimal.Zero, err
	}

	return newBalance, nil
}

// Debit appends a negative ledger entry after checking the balance on
// the locked wallet row.
func (s *walletService) Debit(
	ctx context.Context,
	tx pgx.Tx,
	userID uuid.UUID,
	amount decimal.Decimal,
	kind, description string,
	referenceID uuid.UUID,
) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, model.ErrInvalidAmount
	}

	wallet, err := s.walletRepo.GetOrCreateForUpdateWithTx(ctx, tx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	if wallet.Balance.LessThan(amount) {
		return decimal.Zero, model.ErrInsufficientBalance
	}

	duplicate, err := s.walletRepo.HasTransactionWithTx(ctx, tx, wallet.ID, kind, referenceID)
	if err != nil {
		return decimal.Zero, err
	}
	if duplicate {
		return decimal.Zero, model.ErrDuplicateReference
	}

	newBalance := wallet.Balance.Sub(amount)
	txn := &model.WalletTransaction{
		ID:           uuid.New(),
		WalletID:     wallet.ID,
		Kind:         kind,
		Amount:       amount.Neg(),
		BalanceAfter: newBalance,
		Description:  description,
		ReferenceID:  referenceID,
	}
	if err := s.walletRepo.AppendWithTx(ctx, tx, txn); err != nil {
		return decimal.Zero, err
	}

	return newBalance, nil
}

// Adjust wraps Credit or Debit in a dedicated transaction. Every call
// gets a fresh reference, so repeated corrections are distinct ledger
// entries rather than duplicates.
func (s *walletService) Adjust(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	if amount.IsZero() {
		return decimal.Zero, model.ErrInvalidAmount
	}

	var balance decimal.Decimal
	err := s.walletRepo.WithTx(ctx, func(tx pgx.Tx) error {
		var txErr error
		if amount.IsPositive() {
			balance, txErr = s.Credit(ctx, tx, userID, amount, model.TxKindAdjustment, description, uuid.New())
		} else {
			balance, txErr = s.Debit(ctx, tx, userID, amount.Neg(), model.TxKindAdjustment, description, uuid.New())
		}
		return txErr
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (s *walletService) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrWalletNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}

func (s *walletService) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.WalletTransaction, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrWalletNotFound) {
			return []model.WalletTransaction{}, nil
		}
		return nil, err
	}
	return s.walletRepo.ListTransactions(ctx, wallet.ID, limit, offset)
}
