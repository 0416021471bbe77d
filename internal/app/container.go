package app

import (
	"context"
	"log"
	"time"

	"workwise/internal/config"
	"workwise/internal/database"
	"workwise/internal/database/migration"
	dbpostgres "workwise/internal/database/postgres"
	"workwise/internal/infrastructure/cache"
	"workwise/internal/pkg/jwt"
	"workwise/internal/pkg/mail"
	"workwise/internal/repository"
	"workwise/internal/scheduler"
	"workwise/internal/usecase"
	"workwise/internal/ws"
)

// Container owns every long-lived dependency and the wiring between them.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	JWT    jwt.Service
	Mailer mail.Mailer

	Postings   repository.PostingRepository
	Employers  repository.EmployerRepository
	Candidates repository.CandidateRepository
	Apps       repository.ApplicationRepository
	Stats      repository.DashboardRepository

	JobSearch    usecase.JobSearchUsecase
	JobPost      usecase.JobPostUsecase
	Applications usecase.ApplicationUsecase
	Dashboard    usecase.DashboardUsecase
	Premium      usecase.PremiumUsecase
	Auth         usecase.AuthUsecase
	Profiles     usecase.ProfileUsecase

	Scheduler *scheduler.Scheduler
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := migration.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{Config: cfg, Logger: logger, DB: db}

	c.Cache = cache.NewRedis(cfg.Redis, logger)
	c.Hub = ws.NewHub(logger)
	ws.SetDefaultHub(c.Hub)

	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	c.Mailer = mail.New(cfg.Mail, logger)

	c.Postings = repository.NewPostgresPostingRepository(db)
	c.Employers = repository.NewPostgresEmployerRepository(db)
	c.Candidates = repository.NewPostgresCandidateRepository(db)
	c.Apps = repository.NewPostgresApplicationRepository(db)
	c.Stats = repository.NewPostgresDashboardRepository(db)

	c.JobSearch = usecase.NewJobSearchUsecase(c.Postings, c.Cache, logger)
	c.JobPost = usecase.NewJobPostUsecase(c.Postings, c.Employers, logger)
	// the ranker collaborator plugs in here when one is deployed
	c.Applications = usecase.NewApplicationUsecase(c.Apps, c.Postings, c.Candidates, c.Employers, nil, c.Mailer, logger)
	c.Dashboard = usecase.NewDashboardUsecase(c.Stats, c.Employers)
	c.Premium = usecase.NewPremiumUsecase(c.Employers)
	c.Auth = usecase.NewAuthUsecase(c.Employers, c.Candidates, c.JWT, logger)
	c.Profiles = usecase.NewProfileUsecase(c.Employers, c.Candidates, c.Postings, logger)

	c.Scheduler = scheduler.New(c.Postings, logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
