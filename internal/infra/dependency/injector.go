// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/savings-tracker/backend/config"
	"github.com/savings-tracker/backend/internal/application/usecase/profile"
	"github.com/savings-tracker/backend/internal/application/usecase/report"
	"github.com/savings-tracker/backend/internal/application/usecase/transaction"
	"github.com/savings-tracker/backend/internal/infra/server/router"
	"github.com/savings-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/savings-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	profileRepo := persistence.NewProfileRepository(db)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create profile use cases
	getProfileUseCase := profile.NewGetProfileUseCase(profileRepo)
	upsertProfileUseCase := profile.NewUpsertProfileUseCase(profileRepo)

	// Create report use cases
	getSpendingAnalysisUseCase := report.NewGetSpendingAnalysisUseCase(transactionRepo)
	getIncomeExpenseUseCase := report.NewGetIncomeExpenseUseCase(transactionRepo)
	getSavingsGrowthUseCase := report.NewGetSavingsGrowthUseCase(transactionRepo)
	getBudgetVarianceUseCase := report.NewGetBudgetVarianceUseCase(transactionRepo, profileRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		deleteTransactionUseCase,
	)

	profileController := controller.NewProfileController(
		getProfileUseCase,
		upsertProfileUseCase,
	)

	reportController := controller.NewReportController(
		getSpendingAnalysisUseCase,
		getIncomeExpenseUseCase,
		getSavingsGrowthUseCase,
		getBudgetVarianceUseCase,
	)

	// Create router
	r := router.NewRouter(healthController, transactionController, profileController, reportController)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
