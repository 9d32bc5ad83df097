package usecase

import (
	"sync"

	"github.com/truckerru/backend/internal/pkg/models"
	"github.com/truckerru/backend/services/trucker"
)

// TruckerUC implements the trucker community usecases
type TruckerUC struct {
	cfg  *models.Config
	repo trucker.TruckerRepo

	// seedMu serializes lazy seeding so two in-process requests that
	// both observe an empty collection cannot insert duplicate seeds
	seedMu sync.Mutex
}

// NewTruckerUC creates a new trucker usecase
func NewTruckerUC(cfg *models.Config, repo trucker.TruckerRepo) *TruckerUC {
	return &TruckerUC{
		cfg:  cfg,
		repo: repo,
	}
}
