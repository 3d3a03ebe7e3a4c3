package main

import (
	"context"
	"net/http"

	"github.com/trailpoint/backend/config"
	"github.com/trailpoint/backend/internal/domain"
	"github.com/trailpoint/backend/internal/domain/rewardengine"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/logger"
	"github.com/trailpoint/backend/pkg/router"
	"github.com/trailpoint/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	userRepo          repository.UserRepository
	attractionRepo    repository.AttractionRepository
	taskRepo          repository.TaskRepository
	submissionRepo    repository.SubmissionRepository
	progressRepo      repository.ProgressRepository
	pointLedgerRepo   repository.PointLedgerRepository
	userAggregateRepo repository.UserAggregateRepository
	rewardRepo        repository.RewardRepository
	userRewardRepo    repository.UserRewardRepository

	rewardEngine *rewardengine.Engine

	attractionDomain domain.AttractionDomain
	taskDomain       domain.TaskDomain
	submissionDomain domain.SubmissionDomain
	progressDomain   domain.ProgressDomain
	pointDomain      domain.PointDomain
	rewardDomain     domain.RewardDomain
	statisticDomain  domain.StatisticDomain

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB
	router  *router.Router
	server  *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	s.configs = &cfg
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	return nil
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(databaseLogLevel(s.configs.Database.LogLevel))})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func databaseLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "info":
		return gormlogger.Info
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.attractionRepo = repository.NewAttractionRepository()
	s.taskRepo = repository.NewTaskRepository()
	s.submissionRepo = repository.NewSubmissionRepository()
	s.progressRepo = repository.NewProgressRepository()
	s.pointLedgerRepo = repository.NewPointLedgerRepository()
	s.userAggregateRepo = repository.NewUserAggregateRepository()
	s.rewardRepo = repository.NewRewardRepository()
	s.userRewardRepo = repository.NewUserRewardRepository()
}

func (s *srv) loadDomains() {
	s.rewardEngine = rewardengine.NewEngine(
		s.rewardRepo, s.userRewardRepo, s.submissionRepo, s.progressRepo)

	s.attractionDomain = domain.NewAttractionDomain(s.attractionRepo, s.taskRepo)
	s.taskDomain = domain.NewTaskDomain(s.taskRepo)
	s.submissionDomain = domain.NewSubmissionDomain(
		s.taskRepo,
		s.attractionRepo,
		s.submissionRepo,
		s.progressRepo,
		s.pointLedgerRepo,
		s.userAggregateRepo,
		s.rewardEngine,
	)
	s.progressDomain = domain.NewProgressDomain(s.attractionRepo, s.progressRepo)
	s.pointDomain = domain.NewPointDomain(s.pointLedgerRepo)
	s.rewardDomain = domain.NewRewardDomain(s.rewardRepo, s.userRewardRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.userAggregateRepo, s.userRepo)
}
