package services

import (
	"context"
	"math"
	"strings"

	"angadBack/internal/models"
)

type AdminService struct {
	RecRepo ReclamationRepo
}

// List runs the paginated admin search. Page and size fall back to 0
// and 20, the sort column to date_creation; ordering is always
// descending.
func (s *AdminService) List(ctx context.Context, filter models.ReclamationFilter) (models.ReclamationPage, error) {
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.Size <= 0 {
		filter.Size = 20
	}
	if strings.TrimSpace(filter.Sort) == "" {
		filter.Sort = "date_creation"
	}
	filter.Query = strings.TrimSpace(filter.Query)

	reclamations, total, err := s.RecRepo.SearchAdmin(ctx, filter)
	if err != nil {
		return models.ReclamationPage{}, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + filter.Size - 1) / filter.Size
	}
	return models.ReclamationPage{
		Content:       reclamations,
		Page:          filter.Page,
		Size:          filter.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func (s *AdminService) Detail(ctx context.Context, id int) (models.Reclamation, error) {
	return s.RecRepo.GetReclamationByID(ctx, id)
}

func (s *AdminService) Stats(ctx context.Context) (models.Stats, error) {
	stats := models.Stats{
		ParService: make(map[models.ServiceType]int64, 3),
		ParStatut:  make(map[models.Statut]int64, 4),
	}

	for _, service := range models.AllServiceTypes() {
		count, err := s.RecRepo.CountByService(ctx, service)
		if err != nil {
			return models.Stats{}, err
		}
		stats.ParService[service] = count
	}
	for _, statut := range models.AllStatuts() {
		count, err := s.RecRepo.CountByStatut(ctx, statut)
		if err != nil {
			return models.Stats{}, err
		}
		stats.ParStatut[statut] = count
	}

	avgSeconds, err := s.RecRepo.AvgResolutionSeconds(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	if avgSeconds != nil {
		minutes := int64(math.Round(*avgSeconds / 60.0))
		stats.DureeMoyenneResolutionMinutes = &minutes
	}
	return stats, nil
}
