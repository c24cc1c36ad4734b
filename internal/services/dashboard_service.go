package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/badgers-labs/club-service/internal/database"
	"github.com/badgers-labs/club-service/internal/models"
	"github.com/sirupsen/logrus"
)

const dashboardCacheKey = "dashboard:stats"

// DashboardService calcula las estadísticas del dashboard. Si hay Redis
// disponible el resultado se cachea con un TTL corto; sin Redis se consulta
// la base de datos directamente.
type DashboardService struct {
	socioRepo    *database.SocioRepository
	productoRepo *database.ProductoRepository
	cache        *database.Redis
	cacheTTL     time.Duration
	logger       *logrus.Logger
}

// NewDashboardService crea una nueva instancia del servicio. cache puede
// ser nil.
func NewDashboardService(db *database.DB, cache *database.Redis, cacheTTL time.Duration, logger *logrus.Logger) *DashboardService {
	return &DashboardService{
		socioRepo:    database.NewSocioRepository(db, logger),
		productoRepo: database.NewProductoRepository(db, logger),
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// GetStats retorna la cantidad de socios activos y de productos en
// inventario
func (s *DashboardService) GetStats() (*models.DashboardStats, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(dashboardCacheKey); err == nil {
			var stats models.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	sociosActivos, err := s.socioRepo.CountActivos()
	if err != nil {
		return nil, fmt.Errorf("error counting active socios: %w", err)
	}

	productos, err := s.productoRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("error counting productos: %w", err)
	}

	stats := &models.DashboardStats{
		SociosActivos:         sociosActivos,
		ProductosEnInventario: productos,
	}

	if s.cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.cache.SetWithTTL(dashboardCacheKey, data, s.cacheTTL); err != nil {
				s.logger.Warnf("Error caching dashboard stats: %v", err)
			}
		}
	}

	return stats, nil
}
