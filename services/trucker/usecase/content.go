package usecase

import (
	"context"

	"github.com/truckerru/backend/internal/pkg/constants"
	"go.mongodb.org/mongo-driver/bson"
)

// GetTruckHistory lists truck heritage articles, seeding on first read
func (uc *TruckerUC) GetTruckHistory(ctx context.Context, limit int64) ([]bson.M, error) {
	return uc.listWithSeed(ctx, constants.CollectionTruckHistory, limit, historySeed)
}

// GetGuide lists guidance entries with a fixed limit, seeding on first read
func (uc *TruckerUC) GetGuide(ctx context.Context) ([]bson.M, error) {
	return uc.listWithSeed(ctx, constants.CollectionGuideEntry, constants.GuideLimit, guideSeed)
}

// GetNews lists news items. An empty collection yields fabricated
// placeholder items in the response only; nothing is ever persisted,
// so the placeholders reappear on every read until real news lands.
func (uc *TruckerUC) GetNews(ctx context.Context, limit int64) ([]bson.M, error) {
	docs, err := uc.repo.GetDocuments(ctx, constants.CollectionNewsItem, nil, limit)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return newsPlaceholders(), nil
	}
	return docs, nil
}

// listWithSeed reads a collection and, when it is empty, inserts the
// fixed seed set one record at a time before re-reading. The mutex
// closes the in-process double-seed race; concurrent processes may
// still both seed, which callers accept per the data-access contract.
func (uc *TruckerUC) listWithSeed(ctx context.Context, collection string, limit int64, seed func() []interface{}) ([]bson.M, error) {
	docs, err := uc.repo.GetDocuments(ctx, collection, nil, limit)
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		return docs, nil
	}

	uc.seedMu.Lock()
	defer uc.seedMu.Unlock()

	// Re-check under the lock; another request may have seeded already
	docs, err = uc.repo.GetDocuments(ctx, collection, nil, limit)
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		return docs, nil
	}

	for _, doc := range seed() {
		if _, err := uc.repo.CreateDocument(ctx, collection, doc); err != nil {
			return nil, err
		}
	}

	return uc.repo.GetDocuments(ctx, collection, nil, limit)
}
