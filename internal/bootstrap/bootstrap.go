// Package bootstrap builds the object graph shared by the API server and the CLIs.
package bootstrap

import (
	"context"
	"net/http"

	"inspection_estimator/internal/adapter/http/handlers"
	"inspection_estimator/internal/adapter/http/routes"
	"inspection_estimator/internal/adapter/persistence/repository"
	"inspection_estimator/internal/config"
	"inspection_estimator/internal/domain/report"
	"inspection_estimator/internal/infrastructure/database"
	"inspection_estimator/internal/infrastructure/llm"
	"inspection_estimator/internal/infrastructure/mail"
	"inspection_estimator/internal/infrastructure/payments"
	"inspection_estimator/internal/infrastructure/pdf"
	"inspection_estimator/internal/usecase"
	"inspection_estimator/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// App owns every long-lived client. Close releases them.
type App struct {
	Config   config.Config
	Logger   *zap.Logger
	Reports  *usecase.ReportUseCase
	Checkout *usecase.CheckoutUseCase

	closers []func() error
}

// New wires the application from cfg. Collaborators that cannot be configured are
// logged and left unset, so the affected step reports a failure at request time
// instead of blocking start-up.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := &App{Config: cfg, Logger: logger}

	records, err := app.newRecordRepository(ctx)
	if err != nil {
		logger.Error("record store unavailable", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	gateway, err := app.newCheckoutGateway()
	if err != nil {
		logger.Warn("checkout gateway not configured", zap.String("provider", cfg.Checkout.Provider), zap.Error(err))
	}
	transport, err := app.newMailTransport()
	if err != nil {
		logger.Warn("mail transport not configured", zap.String("transport", cfg.Mail.Transport), zap.Error(err))
	}

	analyzer := llm.NewOpenAIAnalyzer(llm.Config{
		APIKey:      cfg.Analyzer.APIKey,
		BaseURL:     cfg.Analyzer.BaseURL,
		Model:       cfg.Analyzer.Model,
		Temperature: cfg.Analyzer.Temperature,
	}, &http.Client{}, logger)
	if cfg.Analyzer.APIKey == "" {
		logger.Warn("OPENAI_API_KEY is empty; report processing will fail at analysis")
	}

	notifier := usecase.NewNotificationUseCase(transport, usecase.NotificationConfig{
		AdminEmail: cfg.Mail.AdminEmail,
		LeadEmail:  cfg.Mail.LeadEmail,
		PreparedBy: cfg.Report.PreparedBy,
		Timeout:    cfg.Mail.Timeout,
	}, logger)

	app.Reports = usecase.NewReportUseCase(usecase.ReportDeps{
		Extractor: pdf.NewFitzExtractor(logger),
		Analyzer:  analyzer,
		Records:   records,
		Checkout:  gateway,
		Notifier:  notifier,
		Formatter: report.NewFormatter(cfg.Report.PreparedBy),
		Logger:    logger,
	}, usecase.ReportOptions{
		MaxInputChars:      cfg.Analyzer.MaxInputChars,
		AnalyzerTimeout:    cfg.Analyzer.Timeout,
		RequirePaidSession: cfg.Checkout.RequirePaidSession,
	})
	app.Checkout = usecase.NewCheckoutUseCase(gateway, logger)
	return app
}

// Router returns the HTTP API.
func (a *App) Router() *gin.Engine {
	return routes.NewRouter(a.Logger, routes.Handlers{
		Report:   handlers.NewReportHandler(a.Reports, a.Config.Server.UploadMaxBytes, a.Logger),
		Checkout: handlers.NewCheckoutHandler(a.Checkout, a.Config.Server.PublicBaseURL, a.Logger),
	})
}

func (a *App) Close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	a.closers = nil
	return err
}

func (a *App) newRecordRepository(ctx context.Context) (interfaces.IRecordRepository, error) {
	store := a.Config.Store
	switch store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.OpenPostgres(ctx, store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		repo := repository.NewRecordPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, store)
		if err != nil {
			return nil, err
		}
		table := reportsTable(store)
		created, err := database.EnsureTable(ctx, ddb, table)
		if err != nil {
			a.Logger.Warn("ensure table failed", zap.String("table", table), zap.Error(err))
		} else if created {
			a.Logger.Info("table created", zap.String("table", table))
		}
		return repository.NewRecordDynamoRepository(ddb, table), nil
	}
}

// OpenRecordReader connects to the configured store for reading only. It never
// creates tables or schema. The returned close func is never nil.
func OpenRecordReader(ctx context.Context, store config.StoreConfig) (interfaces.IRecordRepository, func() error, error) {
	noop := func() error { return nil }
	switch store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.OpenPostgres(ctx, store.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewRecordPostgresRepository(db), db.Close, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, store)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewRecordDynamoRepository(ddb, reportsTable(store)), noop, nil
	}
}

func reportsTable(store config.StoreConfig) string {
	if store.TableName == "" {
		return repository.DefaultReportsTableName
	}
	return store.TableName
}

func (a *App) newCheckoutGateway() (interfaces.ICheckoutGateway, error) {
	c := a.Config.Checkout
	product := payments.Product{
		Name:        c.ProductName,
		Description: c.ProductDescription,
		UnitAmount:  c.UnitAmount,
		Currency:    c.Currency,
	}
	if c.MockMode {
		a.Logger.Info("mock mode enabled; skipping external payment gateway", zap.String("provider", c.Provider))
		return payments.NewMockGateway(c.Provider, product, a.Logger), nil
	}
	switch c.Provider {
	case config.CheckoutProviderMercadoPago:
		gw, err := payments.NewMercadoPagoGateway(c.MercadoPagoToken, product, a.Logger)
		if err != nil {
			return nil, err
		}
		return gw, nil
	default:
		gw, err := payments.NewStripeGateway(payments.StripeGatewayConfig{SecretKey: c.StripeSecretKey, Product: product}, a.Logger)
		if err != nil {
			return nil, err
		}
		return gw, nil
	}
}

func (a *App) newMailTransport() (interfaces.IMailTransport, error) {
	m := a.Config.Mail
	if m.Transport == config.MailTransportLog {
		return mail.NewLogTransport(m.From, a.Logger), nil
	}
	t, err := mail.NewSMTPTransport(mail.SMTPConfig{
		Host:     m.SMTPHost,
		Port:     m.SMTPPort,
		Username: m.Username,
		Password: m.Password,
		From:     m.From,
	}, a.Logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, t.Close)
	return t, nil
}
