package service

import (
	"context"
	"fmt"

	"watchitup-backend/internal/domains/inventory/model"
	"watchitup-backend/internal/domains/inventory/repository"
	"watchitup-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type inventoryService struct {
	repo repository.Repository
}

// NewService creates the inventory service.
func NewService(repo repository.Repository) Service {
	return &inventoryService{
		repo: repo,
	}
}

// Reserve implements Service.Reserve
func (s *inventoryService) Reserve(ctx context.Context, tx pgx.Tx, lines []model.Line, referenceID uuid.UUID) error {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return model.ErrInvalidQuantity
		}

		available, err := s.repo.GetStockForUpdateWithTx(ctx, tx, line)
		if err != nil {
			return err
		}

		if available < line.Quantity {
			logger.Warn("stock reservation rejected", map[string]interface{}{
				"product_id": line.ProductID.String(),
				"requested":  line.Quantity,
				"available":  available,
			})
			return model.NewInsufficientStockError(line.ProductID, line.VariantID, line.Quantity, available)
		}

		if err := s.repo.AdjustStockWithTx(ctx, tx, line, -line.Quantity, model.MovementReserve, referenceID); err != nil {
			return fmt.Errorf("failed to reserve line: %w", err)
		}
	}

	return nil
}

// Release implements Service.Release
func (s *inventoryService) Release(ctx context.Context, tx pgx.Tx, lines []model.Line, referenceID uuid.UUID) error {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return model.ErrInvalidQuantity
		}

		// Lock before adjusting so release and reserve serialize on
		// the same row.
		if _, err := s.repo.GetStockForUpdateWithTx(ctx, tx, line); err != nil {
			return err
		}

		if err := s.repo.AdjustStockWithTx(ctx, tx, line, line.Quantity, model.MovementRelease, referenceID); err != nil {
			return fmt.Errorf("failed to release line: %w", err)
		}
	}

	return nil
}

// CheckAvailability implements Service.CheckAvailability
func (s *inventoryService) CheckAvailability(ctx context.Context, lines []model.Line) error {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return model.ErrInvalidQuantity
		}

		available, err := s.repo.GetAvailable(ctx, line)
		if err != nil {
			return err
		}

		if available < line.Quantity {
			return model.NewInsufficientStockError(line.ProductID, line.VariantID, line.Quantity, available)
		}
	}

	return nil
}

// Movements implements Service.Movements
func (s *inventoryService) Movements(ctx context.Context, referenceID uuid.UUID) ([]model.StockMovement, error) {
	return s.repo.ListMovements(ctx, referenceID)
}
