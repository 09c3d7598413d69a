package main

import (
	"context"
	"log/slog"
	"os"

	"comanda/config"
	"comanda/internal/delivery"
	"comanda/internal/delivery/http"
	"comanda/internal/delivery/http/middleware"
	"comanda/internal/delivery/http/router/handler"
	"comanda/internal/domain/rules"
	"comanda/internal/domain/service"
	"comanda/internal/infra/catalog"
	logs "comanda/internal/infra/log"
	"comanda/internal/infra/persistence/snapshot"
	"comanda/internal/infra/printer"
	"comanda/internal/infra/qrcode"
	"comanda/internal/infra/receipt"
	"comanda/internal/usecase/impl"

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
		newSnapshotStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			snapshot.NewDraftRepository,
			snapshot.NewOrderRepository,
			catalog.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			rules.NewRegistry,
			newPaymentQRService,
			receipt.New,
			printer.New,
		),
	)
}

// newSnapshotStore opens the persistence collaborator at the configured path
func newSnapshotStore(cfg *config.Config, logger *slog.Logger) *snapshot.Store {
	return snapshot.New(cfg.Storage.SnapshotPath, logger)
}

// newPaymentQRService creates the PIX QR service with dependency injection
func newPaymentQRService(cfg *config.Config) (service.PaymentQRService, error) {
	if cfg.Pix == nil || cfg.Pix.Key == "" {
		return nil, nil // PIX block is optional
	}

	return qrcode.New(qrcode.Params{Config: cfg})
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewDraftService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewDraftHandler,
			handler.NewOrderHandler,
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
