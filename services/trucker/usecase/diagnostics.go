package usecase

import (
	"context"
	"fmt"

	"github.com/truckerru/backend/internal/pkg/models"
)

// StoreDiagnostics introspects store configuration and connectivity.
// Store failures are absorbed and reported descriptively instead of
// failing the request; this is the only place that happens.
func (uc *TruckerUC) StoreDiagnostics(ctx context.Context) *models.StoreDiagnostics {
	diag := &models.StoreDiagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if !uc.repo.Configured() {
		diag.Database = "⚠️ Available but not initialized"
		return diag
	}

	diag.Database = "✅ Available"
	diag.DatabaseURL = setFlag(uc.cfg.Mongo.URI != "")
	diag.DatabaseName = setFlag(uc.cfg.Mongo.Database != "")

	names, err := uc.repo.ListCollectionNames(ctx)
	if err != nil {
		diag.Database = fmt.Sprintf("⚠️ Connected but Error: %s", truncate(err.Error(), 50))
		return diag
	}

	if len(names) > 10 {
		names = names[:10]
	}
	diag.Collections = names
	diag.Database = "✅ Connected & Working"
	diag.ConnectionStatus = "Connected"

	return diag
}

func setFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
