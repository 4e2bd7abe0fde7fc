package service

import (
	"github.com/freshnest/bookingadmin/internal/entity"
)

type catalogService struct {
	services []entity.CleaningService
}

// NewCatalogService создает новый экземпляр CatalogService
func NewCatalogService(services []entity.CleaningService) CatalogService {
	return &catalogService{services: services}
}

func (s *catalogService) Services() []entity.CleaningService {
	list := make([]entity.CleaningService, len(s.services))
	copy(list, s.services)
	return list
}

// ServiceTitle resolves a catalog ID to its display title.
func (s *catalogService) ServiceTitle(id string) string {
	for _, svc := range s.services {
		if svc.ID == id {
			return svc.Title
		}
	}
	return "Unknown Service"
}
