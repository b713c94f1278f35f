package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/analytics"
	"coverletter-backend/internal/coverletters"
	"coverletter-backend/internal/customers"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/llm/fixpoint"
	"coverletter-backend/internal/mailer"
	"coverletter-backend/internal/monitoring"
	"coverletter-backend/internal/queue"
	"coverletter-backend/internal/resumes"
	"coverletter-backend/internal/shared/config"
	"coverletter-backend/internal/shared/server"
	"coverletter-backend/internal/shared/storage/db"
	"coverletter-backend/internal/taskproc"
)

// App holds shared dependencies for the API and worker processes.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Queue  queue.Client

	Monitor       monitoring.Notifier
	CustomersRepo customers.Repo
	ResumesRepo   resumes.Repo
	LettersRepo   coverletters.Repo
	EventsRepo    analytics.Repo

	Generator    *coverletters.Service
	Mailer       *mailer.Service
	Relay        *coverletters.FeedbackRelay
	Orchestrator *taskproc.Orchestrator

	CoverLetterHandler *coverletters.Handler
	ResumeHandler      *resumes.Handler
}

// Build prepares shared dependencies for the API process and wires the router.
func Build(cfg config.Config) (*App, error) {
	return build(cfg, db.OptionsFromEnv(db.DefaultServerOptions()))
}

// BuildWorker prepares shared dependencies for the queue worker, which runs
// with a smaller connection pool.
func BuildWorker(cfg config.Config) (*App, error) {
	return build(cfg, db.OptionsFromEnv(db.DefaultWorkerOptions()))
}

func build(cfg config.Config, dbOpts db.Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg, dbOpts)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx)
	if err != nil {
		return nil, err
	}

	var monitor monitoring.Notifier = monitoring.NopNotifier{}
	if strings.TrimSpace(cfg.HoneybadgerAPIKey) != "" {
		monitor = monitoring.NewHoneybadger(cfg.HoneybadgerAPIKey, cfg.Env)
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Queue:   queueClient,
		Monitor: monitor,
	}

	if sqlDB != nil {
		app.CustomersRepo = &customers.PGRepo{DB: sqlDB}
		app.ResumesRepo = &resumes.PGRepo{DB: sqlDB}
		app.LettersRepo = &coverletters.PGRepo{DB: sqlDB}
		app.EventsRepo = &analytics.PGRepo{DB: sqlDB}
	} else {
		app.CustomersRepo = customers.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.LettersRepo = coverletters.NewMemoryRepo()
		app.EventsRepo = analytics.NewMemoryRepo()
	}

	var llmClient llm.Client = llm.PlaceholderClient{}
	var feedbackRecorder llm.FeedbackRecorder
	if strings.TrimSpace(cfg.OpenAIAPIKey) != "" && strings.TrimSpace(cfg.FixpointAPIKey) != "" {
		fx, err := fixpoint.NewClient(cfg.OpenAIAPIKey, cfg.FixpointAPIKey, cfg.FixpointAPIURL)
		if err != nil {
			return nil, fmt.Errorf("build completion client: %w", err)
		}
		llmClient = fx
		feedbackRecorder = fx
	} else if !isDevLike(cfg.Env) {
		return nil, fmt.Errorf("OPENAI_API_KEY and FIXPOINT_API_KEY are required")
	} else {
		log.Printf("bootstrap: completion credentials missing; using placeholder client")
	}

	app.Generator = coverletters.NewService(app.LettersRepo, llmClient, cfg.CompletionModel)
	app.Mailer = &mailer.Service{
		Poster:      &mailer.SendGridClient{APIKey: cfg.SendgridAPIKey},
		SenderEmail: cfg.SendgridSenderEmail,
		SenderName:  cfg.SendgridSenderName,
		TemplateID:  cfg.SendgridTemplateID,
		Monitor:     monitor,
	}
	app.Relay = &coverletters.FeedbackRelay{Recorder: feedbackRecorder, Monitor: monitor}
	app.Orchestrator = &taskproc.Orchestrator{
		Generator: app.Generator,
		Resumes:   app.ResumesRepo,
		Customers: app.CustomersRepo,
		Events:    app.EventsRepo,
		Mailer:    app.Mailer,
		Monitor:   monitor,
	}

	var dispatcher coverletters.Dispatcher
	if queueClient != nil {
		dispatcher = &taskproc.QueueDispatcher{Client: queueClient}
	} else {
		dispatcher = &taskproc.InlineDispatcher{Orch: app.Orchestrator}
	}
	app.CoverLetterHandler = coverletters.NewHandler(app.Generator, app.ResumesRepo, dispatcher, app.Relay)
	app.ResumeHandler = resumes.NewHandler(app.ResumesRepo)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		CoverLetterHandler: app.CoverLetterHandler,
		ResumeHandler:      app.ResumeHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config, opts db.Options) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildQueue(ctx context.Context) (queue.Client, error) {
	if strings.TrimSpace(os.Getenv("CL_SQS_QUEUE_URL")) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
