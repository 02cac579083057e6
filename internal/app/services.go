package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/practiq/practiq_backend/config"
	"github.com/practiq/practiq_backend/internal/repo"
	"github.com/practiq/practiq_backend/internal/service/auth"
	"github.com/practiq/practiq_backend/internal/service/billing"
	svcclient "github.com/practiq/practiq_backend/internal/service/client"
	"github.com/practiq/practiq_backend/internal/service/note"
	"github.com/practiq/practiq_backend/internal/service/session"
	"github.com/practiq/practiq_backend/internal/store"
	"github.com/practiq/practiq_backend/pkg/email"
	pasetotoken "github.com/practiq/practiq_backend/pkg/paseto"
	stripepkg "github.com/practiq/practiq_backend/pkg/stripe"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideClientService,
		ProvideSessionService,
		ProvideNoteService,
		ProvideBillingService,
		ProvideWorkspaceManager,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	mail *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, mail, paseto, cfg)
}

func ProvideClientService(db *repo.Client) svcclient.Service {
	return svcclient.New(db)
}

func ProvideSessionService(db *repo.Client) session.Service {
	return session.New(db)
}

func ProvideNoteService(db *repo.Client) note.Service {
	return note.New(db)
}

func ProvideBillingService(db *repo.Client, sc *stripepkg.Client, mail *email.Client, cfg *config.Config) billing.Service {
	return billing.New(db, sc, mail, cfg.Stripe.WebhookSecret)
}

func ProvideWorkspaceManager(clients svcclient.Service, sessions session.Service, notes note.Service) *store.Manager {
	return store.NewManager(clients, sessions, notes)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
