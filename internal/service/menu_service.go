package service

import (
	"context"

	"pico-pos/internal/ledger"
	"pico-pos/internal/model"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	ledger *ledger.Ledger
	logger zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(l *ledger.Ledger, logger zerolog.Logger) MenuService {
	return &menuService{
		ledger: l,
		logger: logger.With().Str("service", "menu").Logger(),
	}
}

// List returns the whole catalogue for an empty or "all" category.
func (s *menuService) List(ctx context.Context, category string) ([]model.MenuItem, error) {
	items := s.ledger.Menu()
	if category == "" || category == "all" {
		return items, nil
	}

	c := model.Category(category)
	if !c.Valid() {
		s.logger.Debug().Str("category", category).Msg("unknown category")
		return nil, model.NewDomainError(model.ErrCodeInvalidMenuItem, "unknown category "+category)
	}

	filtered := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Category == c {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *menuService) Create(ctx context.Context, req model.MenuItemRequest) (model.MenuItem, error) {
	item, err := s.ledger.CreateMenuItem(req)
	if err != nil {
		s.logger.Warn().Err(err).Str("name", req.Name).Msg("menu item rejected")
		return model.MenuItem{}, err
	}

	s.logger.Info().
		Str("item_id", item.ID).
		Str("name", item.Name).
		Msg("menu item created")

	return item, nil
}

func (s *menuService) Update(ctx context.Context, id string, req model.MenuItemRequest) (model.MenuItem, error) {
	item, err := s.ledger.UpdateMenuItem(id, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("item_id", id).Msg("menu item update rejected")
		return model.MenuItem{}, err
	}

	s.logger.Info().Str("item_id", id).Msg("menu item updated")
	return item, nil
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	if err := s.ledger.DeleteMenuItem(id); err != nil {
		s.logger.Debug().Str("item_id", id).Msg("menu item not found")
		return err
	}

	s.logger.Info().Str("item_id", id).Msg("menu item deleted")
	return nil
}
