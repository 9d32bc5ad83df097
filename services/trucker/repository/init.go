package repository

import (
	"github.com/truckerru/backend/internal/pkg/database"
	"github.com/truckerru/backend/internal/pkg/models"
)

// TruckerRepo implements document store access for the trucker service.
// The client may be nil when the store was never configured; every
// method then fails fast with database.ErrStoreUnavailable.
type TruckerRepo struct {
	cfg    *models.Config
	client *database.MongoClient
}

// NewTruckerRepo creates a new trucker repository
func NewTruckerRepo(cfg *models.Config, client *database.MongoClient) *TruckerRepo {
	return &TruckerRepo{
		cfg:    cfg,
		client: client,
	}
}

// Configured reports whether the store handle was established
func (r *TruckerRepo) Configured() bool {
	return r.client != nil
}
