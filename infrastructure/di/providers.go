// Package di wires the application together. Construction is manual and
// explicit: each provider builds one collaborator, InitializeContainer
// assembles them in dependency order.
package di

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"bfd-backend/application/executor"
	"bfd-backend/application/ports"
	"bfd-backend/application/widget"
	"bfd-backend/domain/catalog"
	"bfd-backend/infrastructure/config"
	"bfd-backend/infrastructure/messaging/eventbridge"
	"bfd-backend/infrastructure/messaging/local"
	"bfd-backend/infrastructure/observability"
	"bfd-backend/infrastructure/persistence/dynamodb"
	"bfd-backend/infrastructure/persistence/memory"
	"bfd-backend/infrastructure/seo"
	"bfd-backend/interfaces/http/rest"
	"bfd-backend/pkg/auth"
	"bfd-backend/pkg/events"
)

// Container holds the assembled application
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Catalog   *catalog.Catalog
	Notifier  *events.Notifier
	Store     ports.MissionStore
	Analytics ports.AnalyticsSink
	Metrics   ports.MetricsEmitter
	Executor  *executor.Executor
	Bridge    *widget.Bridge
	Sitemap   *seo.Sitemap
	Scheduler *seo.Scheduler
	Handler   http.Handler
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideMissionStore picks the store for the environment: DynamoDB in
// production, in-memory everywhere else
func ProvideMissionStore(
	client *awsdynamodb.Client,
	cfg *config.Config,
	notifier *events.Notifier,
	logger *zap.Logger,
) ports.MissionStore {
	if cfg.IsProduction() {
		return dynamodb.NewMissionStore(client, cfg.DynamoDBTable, cfg.MaxSavedMissions, notifier, logger)
	}
	return memory.NewMissionStore(cfg.MaxSavedMissions, notifier, logger)
}

// ProvideAnalytics picks the analytics sink: EventBridge in production,
// log-only everywhere else
func ProvideAnalytics(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.AnalyticsSink {
	if cfg.IsProduction() {
		return eventbridge.NewAnalyticsSink(client, cfg.EventBusName, logger)
	}
	return local.NewAnalyticsSink(logger)
}

// ProvideMetrics creates the metrics emitter. Without the feature flag the
// CloudWatch client stays nil and emission is a no-op.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) ports.MetricsEmitter {
	namespace := fmt.Sprintf("BFD/%s", cfg.Environment)
	if !cfg.EnableMetrics {
		client = nil
	}
	return observability.NewMetrics(namespace, client, logger)
}

// InitializeContainer builds the full application graph
func InitializeContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	awsCfg, err := ProvideAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	cat := catalog.New()
	notifier := events.NewNotifier()

	store := ProvideMissionStore(ProvideDynamoDBClient(awsCfg), cfg, notifier, logger)
	analytics := ProvideAnalytics(ProvideEventBridgeClient(awsCfg), cfg, logger)
	metrics := ProvideMetrics(ProvideCloudWatchClient(awsCfg), cfg, logger)

	exec := executor.New(store, analytics, notifier, metrics, logger)
	bridge := widget.NewBridge(cfg.WidgetConfig(), logger)
	sitemap := seo.NewSitemap(cfg.SiteBaseURL, cat, logger)
	scheduler := seo.NewScheduler(sitemap, cfg.SitemapCronSpec, logger)
	tokens := auth.NewVisitorTokens(cfg.JWTSecret, cfg.JWTIssuer)

	router := rest.NewRouter(cfg, exec, store, analytics, cat, bridge, sitemap, tokens, logger)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Catalog:   cat,
		Notifier:  notifier,
		Store:     store,
		Analytics: analytics,
		Metrics:   metrics,
		Executor:  exec,
		Bridge:    bridge,
		Sitemap:   sitemap,
		Scheduler: scheduler,
		Handler:   router.Setup(),
	}, nil
}
