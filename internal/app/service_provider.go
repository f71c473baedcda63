package app

import (
	"context"
	accountAPI "lockin_backend/internal/api/account"
	authAPI "lockin_backend/internal/api/auth"
	casinoAPI "lockin_backend/internal/api/casino"
	dashboardAPI "lockin_backend/internal/api/dashboard"
	progressAPI "lockin_backend/internal/api/progress"
	studyAPI "lockin_backend/internal/api/study"
	"lockin_backend/internal/config"
	"lockin_backend/internal/config/env"
	"lockin_backend/internal/repository"
	"lockin_backend/internal/repository/account_repo"
	"lockin_backend/internal/repository/auth_repo"
	"lockin_backend/internal/repository/spin_repo"
	"lockin_backend/internal/repository/study_repo"
	"lockin_backend/internal/service"
	"lockin_backend/internal/service/account"
	"lockin_backend/internal/service/aggregation"
	"lockin_backend/internal/service/auth"
	"lockin_backend/internal/service/casino"
	"lockin_backend/internal/service/ledger"
	"lockin_backend/internal/service/study"
	"lockin_backend/internal/worker"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
)

const gameConfigPath = "config.yaml"

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager
	ctxGetter *trmpgx.CtxGetter

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Configs
	gameCfg    config.GameConfig
	jwtCfg     config.JWTConfig
	httpCfg    config.HTTPConfig
	janitorCfg config.JanitorConfig
	logCfg     config.LogConfig

	// Repositories
	accountRepo repository.AccountRepository
	studyRepo   repository.StudyRepository
	spinRepo    repository.SpinRepository
	authRepo    repository.AuthRepository

	// Services
	ledgerServ      service.LedgerService
	studyServ       service.StudyService
	casinoServ      service.CasinoService
	aggregationServ service.AggregationService
	accountServ     service.AccountService
	authServ        service.AuthService

	// Handlers
	authHand      *authAPI.Handler
	casinoHand    *casinoAPI.Handler
	studyHand     *studyAPI.Handler
	dashboardHand *dashboardAPI.Handler
	progressHand  *progressAPI.Handler
	accountHand   *accountAPI.Handler

	janitor *worker.Janitor
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(gameConfigPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) JanitorCfg() config.JanitorConfig {
	if sp.janitorCfg == nil {
		cfg, err := env.NewJanitorConfig()
		if err != nil {
			panic("failed to get janitor config: " + err.Error())
		}
		sp.janitorCfg = cfg
	}
	return sp.janitorCfg
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

// CtxGetter достаёт транзакцию, открытую TXManager, из контекста
func (sp *ServiceProvider) CtxGetter() *trmpgx.CtxGetter {
	if sp.ctxGetter == nil {
		sp.ctxGetter = trmpgx.DefaultCtxGetter
	}
	return sp.ctxGetter
}

func (sp *ServiceProvider) AccountRepo(ctx context.Context) repository.AccountRepository {
	if sp.accountRepo == nil {
		sp.accountRepo = account_repo.NewAccountRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.accountRepo
}

func (sp *ServiceProvider) StudyRepo(ctx context.Context) repository.StudyRepository {
	if sp.studyRepo == nil {
		sp.studyRepo = study_repo.NewStudyRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.studyRepo
}

func (sp *ServiceProvider) SpinRepo(ctx context.Context) repository.SpinRepository {
	if sp.spinRepo == nil {
		sp.spinRepo = spin_repo.NewSpinRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.spinRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.authRepo
}

func (sp *ServiceProvider) LedgerService(ctx context.Context) service.LedgerService {
	if sp.ledgerServ == nil {
		sp.ledgerServ = ledger.NewLedgerService(sp.AccountRepo(ctx))
	}
	return sp.ledgerServ
}

func (sp *ServiceProvider) StudyService(ctx context.Context) service.StudyService {
	if sp.studyServ == nil {
		sp.studyServ = study.NewStudyService(
			sp.TXManager(ctx),
			sp.AccountRepo(ctx),
			sp.StudyRepo(ctx),
			sp.LedgerService(ctx),
			sp.GameCfg(),
		)
	}
	return sp.studyServ
}

func (sp *ServiceProvider) CasinoService(ctx context.Context) service.CasinoService {
	if sp.casinoServ == nil {
		sp.casinoServ = casino.NewCasinoService(
			sp.TXManager(ctx),
			sp.LedgerService(ctx),
			sp.SpinRepo(ctx),
			sp.GameCfg(),
		)
	}
	return sp.casinoServ
}

func (sp *ServiceProvider) AggregationService(ctx context.Context) service.AggregationService {
	if sp.aggregationServ == nil {
		sp.aggregationServ = aggregation.NewAggregationService(sp.AccountRepo(ctx), sp.StudyRepo(ctx), sp.SpinRepo(ctx))
	}
	return sp.aggregationServ
}

func (sp *ServiceProvider) AccountService(ctx context.Context) service.AccountService {
	if sp.accountServ == nil {
		sp.accountServ = account.NewAccountService(
			sp.TXManager(ctx),
			sp.AccountRepo(ctx),
			sp.StudyRepo(ctx),
			sp.SpinRepo(ctx),
			sp.AuthRepo(ctx),
			sp.GameCfg().StartingBalance(),
		)
	}
	return sp.accountServ
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.AccountRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.GameCfg().StartingBalance(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:                 sp.AuthService(ctx),
			AccessTokenDuration:  sp.JWTCfg().AccessTokenDuration(),
			RefreshTokenDuration: sp.JWTCfg().RefreshTokenDuration(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) CasinoHandler(ctx context.Context) *casinoAPI.Handler {
	if sp.casinoHand == nil {
		sp.casinoHand = casinoAPI.NewHandler(casinoAPI.HandlerDeps{Serv: sp.CasinoService(ctx)})
	}
	return sp.casinoHand
}

func (sp *ServiceProvider) StudyHandler(ctx context.Context) *studyAPI.Handler {
	if sp.studyHand == nil {
		sp.studyHand = studyAPI.NewHandler(studyAPI.HandlerDeps{Serv: sp.StudyService(ctx)})
	}
	return sp.studyHand
}

func (sp *ServiceProvider) DashboardHandler(ctx context.Context) *dashboardAPI.Handler {
	if sp.dashboardHand == nil {
		sp.dashboardHand = dashboardAPI.NewHandler(dashboardAPI.HandlerDeps{Serv: sp.AggregationService(ctx)})
	}
	return sp.dashboardHand
}

func (sp *ServiceProvider) ProgressHandler(ctx context.Context) *progressAPI.Handler {
	if sp.progressHand == nil {
		sp.progressHand = progressAPI.NewHandler(progressAPI.HandlerDeps{Serv: sp.AggregationService(ctx)})
	}
	return sp.progressHand
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{Serv: sp.AccountService(ctx)})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) Janitor(ctx context.Context) *worker.Janitor {
	if sp.janitor == nil {
		j, err := worker.NewJanitor(sp.AuthRepo(ctx), sp.JanitorCfg().Interval())
		if err != nil {
			panic("failed to create janitor: " + err.Error())
		}
		sp.janitor = j
	}
	return sp.janitor
}
