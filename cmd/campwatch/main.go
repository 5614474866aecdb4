package main

import (
	"context"
	"log/slog"
	"os"

	"campwatch/config"
	"campwatch/internal/delivery"
	"campwatch/internal/delivery/http"
	"campwatch/internal/delivery/http/middleware"
	"campwatch/internal/delivery/http/router/handler"
	"campwatch/internal/domain/service"
	"campwatch/internal/infra/auth"
	"campwatch/internal/infra/cache"
	logs "campwatch/internal/infra/log"
	"campwatch/internal/infra/notification"
	"campwatch/internal/infra/persistence/postgres"
	"campwatch/internal/infra/provider/recreation"
	"campwatch/internal/infra/qrcode"
	"campwatch/internal/usecase"
	"campwatch/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPreferenceRepository,
			postgres.NewHistoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notification.NewMessageSender,
			recreation.NewClient,
			newSearchProvider,
			newAvailabilityProvider,
			newQRCodeService,
		),
	)
}

// newSearchProvider puts the Redis read-through cache in front of Recreation.gov search.
// A nil client leaves the provider uncached.
func newSearchProvider(client *recreation.Client, rdb *redis.Client, cfg *config.Config, logger *slog.Logger) service.SearchProvider {
	return cache.NewCachedSearchProvider(client, rdb, cfg.Cache.TTL, cfg.Cache.Prefix, logger)
}

func newAvailabilityProvider(client *recreation.Client) service.AvailabilityProvider {
	return client
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSearchService,
			impl.NewNotificationService,
			fx.Annotate(
				impl.NewWatchScheduler,
				fx.As(new(usecase.Watcher)),
			),
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSearchHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
