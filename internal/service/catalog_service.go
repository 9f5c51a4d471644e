package service

import (
	"context"
	"strings"

	"github.com/RubachokBoss/club-meetings/internal/models"
	"github.com/RubachokBoss/club-meetings/internal/repository"
	"github.com/rs/zerolog"
)

// CatalogService exposes the read-only room and club listings and seeds them.
type CatalogService interface {
	GetAllRooms(ctx context.Context) ([]models.Room, error)
	GetAllClubs(ctx context.Context) ([]models.Club, error)
	Seed(ctx context.Context, rooms, clubs []string) (int, error)
}

type catalogService struct {
	roomRepo repository.RoomRepository
	clubRepo repository.ClubRepository
	logger   zerolog.Logger
}

func NewCatalogService(roomRepo repository.RoomRepository, clubRepo repository.ClubRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		roomRepo: roomRepo,
		clubRepo: clubRepo,
		logger:   logger,
	}
}

func (s *catalogService) GetAllRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("get rooms", err)
	}
	return rooms, nil
}

func (s *catalogService) GetAllClubs(ctx context.Context) ([]models.Club, error) {
	clubs, err := s.clubRepo.GetAll(ctx)
	if err != nil {
		return nil, storeError("get clubs", err)
	}
	return clubs, nil
}

// Seed adds the named rooms and clubs that do not exist yet and returns how
// many rows were inserted. Blank names are skipped.
func (s *catalogService) Seed(ctx context.Context, rooms, clubs []string) (int, error) {
	added := 0

	for _, name := range rooms {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		inserted, err := s.roomRepo.EnsureByName(ctx, name)
		if err != nil {
			return added, storeError("seed room "+name, err)
		}
		if inserted {
			added++
			s.logger.Info().Str("room", name).Msg("Room seeded")
		}
	}

	for _, name := range clubs {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		inserted, err := s.clubRepo.EnsureByName(ctx, name)
		if err != nil {
			return added, storeError("seed club "+name, err)
		}
		if inserted {
			added++
			s.logger.Info().Str("club", name).Msg("Club seeded")
		}
	}

	return added, nil
}
