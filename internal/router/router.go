package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "medication-reminder/docs"
	mem "medication-reminder/internal/adapters/storage/memory"
	pg "medication-reminder/internal/adapters/storage/postgres"
	lite "medication-reminder/internal/adapters/storage/sqlite"
	"medication-reminder/internal/domain/adherence"
	"medication-reminder/internal/domain/cards"
	"medication-reminder/internal/domain/intake"
	"medication-reminder/internal/domain/schedule"
	"medication-reminder/internal/domain/session"
	"medication-reminder/internal/domain/weekly"
	"medication-reminder/internal/middleware"
	"medication-reminder/internal/platform/logger"
	"medication-reminder/internal/ports/storage"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => NewFromEnv

	// Storage explícito (tests). Si es nil se resuelve por DB o env.
	KV storage.KeyValueStore

	// Opcional: si viene, usa Postgres.
	DB *sql.DB

	// Reloj para la vista semanal; nil => time.Now.
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	kv := resolveKV(opts, log)

	// Stores (únicos que tocan el storage)
	cardStore := cards.NewStore(kv, log)
	intakeStore := intake.NewStore(kv, log)
	noticeStore := session.NewStore(kv, log)

	// Services por módulo
	cardsSvc := cards.NewService(cardStore)
	intakeSvc := intake.NewService(intakeStore)

	// Rutas con namespace de perfil
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.ProfileContext)

		cards.RegisterRoutes(pr, cardsSvc)
		schedule.RegisterRoutes(pr, cardStore)
		adherence.RegisterRoutes(pr, cardStore)
		intake.RegisterRoutes(pr, intakeSvc)
		weekly.RegisterRoutes(pr, intakeStore, opts.Now)
		session.RegisterRoutes(pr, noticeStore)
	})

	return r
}

// resolveKV: KV explícito > DB explícita > DB_DSN (Postgres) > SQLITE_PATH > memoria.
func resolveKV(opts Options, log logger.Logger) storage.KeyValueStore {
	if opts.KV != nil {
		return opts.KV
	}

	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Warn("postgres unavailable, falling back", logger.Fields{"err": err})
			} else {
				db = opened
			}
		}
	}
	if db != nil {
		log.Info("storage: postgres", nil)
		return pg.NewKVStore(db)
	}

	if path := os.Getenv("SQLITE_PATH"); path != "" {
		opened, err := lite.Open(path)
		if err != nil {
			log.Warn("sqlite unavailable, falling back", logger.Fields{"path": path, "err": err})
		} else {
			log.Info("storage: sqlite", logger.Fields{"path": path})
			return lite.NewKVStore(opened)
		}
	}

	log.Info("storage: memory", nil)
	return mem.NewKVStore()
}
