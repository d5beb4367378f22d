package service

import (
	"context"
	"errors"
	"strings"

	"GiftKiosk/internal/model"
	"GiftKiosk/internal/repo"

	"go.uber.org/zap"
)

// UnknownLocation показывается, если пункт не найден.
const UnknownLocation = "알 수 없는 장소"

type LocationService struct {
	locations repo.LocationRepository
	logger    *zap.SugaredLogger
}

func NewLocationService(locations repo.LocationRepository, logger *zap.SugaredLogger) *LocationService {
	return &LocationService{locations: locations, logger: logger}
}

// Name возвращает название пункта; при любой ошибке — UnknownLocation.
func (s *LocationService) Name(ctx context.Context, id string) string {
	if strings.TrimSpace(id) == "" {
		return UnknownLocation
	}
	loc, err := s.locations.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			s.logger.Warnw("location lookup failed", "id", id, "error", err)
		}
		return UnknownLocation
	}
	return loc.Name
}

func (s *LocationService) List(ctx context.Context) ([]model.Location, error) {
	return s.locations.List(ctx)
}

func (s *LocationService) Create(ctx context.Context, name string) (*model.Location, Mutation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Mutation{}, ErrEmptyName
	}
	loc := &model.Location{Name: name}
	if err := s.locations.Create(ctx, loc); err != nil {
		return nil, Mutation{}, err
	}
	s.logger.Infow("location created", "id", loc.ID, "name", loc.Name)
	return loc, reload, nil
}
