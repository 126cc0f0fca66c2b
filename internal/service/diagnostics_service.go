package service

import (
	"context"

	"mini-shop/internal/model"
	"mini-shop/internal/repository"

	"github.com/rs/zerolog"
)

// Status strings rendered by the diagnostics report.
const (
	statusBackendRunning     = "✅ Running"
	statusDBNotAvailable     = "❌ Not Available"
	statusDBAvailable        = "✅ Available"
	statusDBWorking          = "✅ Connected & Working"
	statusDBErrorPrefix      = "⚠️  Connected but Error: "
	statusConnected          = "Connected"
	statusNotConnected       = "Not Connected"
	statusEnvSet             = "✅ Set"
	statusEnvNotSet          = "❌ Not Set"
	maxDiagnosticCollections = 10
	maxDiagnosticErrorLen    = 50
)

// diagnosticsService implements DiagnosticsService.
type diagnosticsService struct {
	store          repository.Store
	databaseURLSet bool
	nameSet        bool
	logger         zerolog.Logger
}

// NewDiagnosticsService creates a diagnostics service. The two booleans
// record whether DATABASE_URL and DATABASE_NAME were present at startup.
func NewDiagnosticsService(store repository.Store, databaseURLSet, nameSet bool, logger zerolog.Logger) DiagnosticsService {
	return &diagnosticsService{
		store:          store,
		databaseURLSet: databaseURLSet,
		nameSet:        nameSet,
		logger:         logger.With().Str("service", "diagnostics").Logger(),
	}
}

// Report builds the connectivity report. It never fails: storage errors are
// rendered as truncated strings inside the report body instead.
func (s *diagnosticsService) Report(ctx context.Context) *model.DiagnosticsReport {
	report := &model.DiagnosticsReport{
		Backend:          statusBackendRunning,
		Database:         statusDBNotAvailable,
		ConnectionStatus: statusNotConnected,
		Collections:      []string{},
	}

	if s.store.Available() {
		report.Database = statusDBAvailable
		report.ConnectionStatus = statusConnected

		names, err := s.store.CollectionNames(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("diagnostics collection listing failed")
			report.Database = statusDBErrorPrefix + truncate(err.Error(), maxDiagnosticErrorLen)
		} else {
			if len(names) > maxDiagnosticCollections {
				names = names[:maxDiagnosticCollections]
			}
			report.Collections = names
			report.Database = statusDBWorking
		}
	}

	report.DatabaseURL = envStatus(s.databaseURLSet)
	report.DatabaseName = envStatus(s.nameSet)

	return report
}

func envStatus(set bool) string {
	if set {
		return statusEnvSet
	}
	return statusEnvNotSet
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
