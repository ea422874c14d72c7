package service

import (
	"context"

	"pico-pos/internal/ledger"
	"pico-pos/internal/model"

	"github.com/rs/zerolog"
)

// floorService implements FloorService.
type floorService struct {
	ledger *ledger.Ledger
	logger zerolog.Logger
}

// NewFloorService creates a new floor plan service.
func NewFloorService(l *ledger.Ledger, logger zerolog.Logger) FloorService {
	return &floorService{
		ledger: l,
		logger: logger.With().Str("service", "floor").Logger(),
	}
}

func (s *floorService) List(ctx context.Context) []model.Table {
	return s.ledger.Tables()
}

func (s *floorService) Add(ctx context.Context) model.Table {
	table := s.ledger.AddTable()
	s.logger.Info().Int("table_id", table.ID).Str("label", table.Label).Msg("table added")
	return table
}

func (s *floorService) Update(ctx context.Context, id int, req model.TableUpdateRequest) (model.Table, error) {
	table, err := s.ledger.UpdateTable(id, req)
	if err != nil {
		s.logger.Debug().Int("table_id", id).Msg("table not found")
		return model.Table{}, err
	}
	return table, nil
}

// Remove deletes a table; removing the table being served abandons its cart.
func (s *floorService) Remove(ctx context.Context, id int) error {
	if err := s.ledger.RemoveTable(id); err != nil {
		s.logger.Debug().Int("table_id", id).Msg("table not found")
		return err
	}

	s.logger.Info().Int("table_id", id).Msg("table removed")
	return nil
}
