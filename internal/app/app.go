package app

import (
	"context"
	"net/http"

	"estudios-app-go/internal/catalog"
	"estudios-app-go/internal/config"
	"estudios-app-go/internal/db"
	familiesdomain "estudios-app-go/internal/domain/families"
	financesdomain "estudios-app-go/internal/domain/finances"
	scholarshipsdomain "estudios-app-go/internal/domain/scholarships"
	studiesdomain "estudios-app-go/internal/domain/studies"
	usersdomain "estudios-app-go/internal/domain/users"
	"estudios-app-go/internal/events"
	catalogrepo "estudios-app-go/internal/repository/postgres/catalog"
	familiesrepo "estudios-app-go/internal/repository/postgres/families"
	financesrepo "estudios-app-go/internal/repository/postgres/finances"
	scholarshipsrepo "estudios-app-go/internal/repository/postgres/scholarships"
	studiesrepo "estudios-app-go/internal/repository/postgres/studies"
	usersrepo "estudios-app-go/internal/repository/postgres/users"
	"estudios-app-go/internal/transport/httpserver"
	"estudios-app-go/internal/transport/httpserver/handler"
	"estudios-app-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	publisher  *events.Publisher
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg := config.Load()

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	log.Info("app: loading question catalog", "fixture", cfg.CatalogFixture)
	cat, err := catalog.Load(context.Background(), catalogrepo.NewPostgres(dbConn), cfg.CatalogFixture)
	if err != nil {
		return nil, err
	}
	log.Info("app: catalog ready", "sections", len(cat.Sections()), "questions", cat.QuestionCount())

	var publisher *events.Publisher
	var studyEvents studiesdomain.EventPublisher = events.NopPublisher{}
	if cfg.AMQP.URL != "" {
		publisher, err = events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue, log)
		if err != nil {
			return nil, err
		}
		studyEvents = publisher
		log.Info("app: event publisher connected", "exchange", cfg.AMQP.Exchange)
	}

	users := usersdomain.NewService(usersrepo.NewPostgres(dbConn))
	families := familiesdomain.NewService(familiesrepo.NewPostgres(dbConn))
	finances := financesdomain.NewService(financesrepo.NewPostgres(dbConn))
	studies := studiesdomain.NewService(studiesrepo.NewPostgres(dbConn), cat, families, studyEvents)
	scholarships := scholarshipsdomain.NewService(scholarshipsrepo.NewPostgres(dbConn), studies, finances)

	handlers := handler.New(users, families, finances, studies, scholarships, cat, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, log)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		publisher:  publisher,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.publisher != nil {
		_ = a.publisher.Close()
	}
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
