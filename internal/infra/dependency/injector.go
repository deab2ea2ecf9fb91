// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/inventory-tracker/backend/config"
	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/application/usecase/category"
	"github.com/inventory-tracker/backend/internal/application/usecase/inventory"
	"github.com/inventory-tracker/backend/internal/application/usecase/settings"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	"github.com/inventory-tracker/backend/internal/infra/server/router"
	"github.com/inventory-tracker/backend/internal/integration/cache"
	"github.com/inventory-tracker/backend/internal/integration/email"
	"github.com/inventory-tracker/backend/internal/integration/email/templates"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/inventory-tracker/backend/internal/integration/notification"
	"github.com/inventory-tracker/backend/internal/integration/persistence"
)

const (
	SettingsBackendDatabase = "database"
	SettingsBackendRedis    = "redis"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Schema   adapter.SchemaManager
	Session  *inventory.Session
	Platform *notification.CronPlatform
	Router   *router.Router

	restoreReminder *settings.RestoreReminderUseCase
}

// Options overrides collaborators that are normally built from the configuration.
type Options struct {
	// DBHealthChecker reports database connectivity to the health endpoint.
	DBHealthChecker func() bool
	// Redis is used as the settings backend when set, regardless of SETTINGS_BACKEND.
	Redis *redis.Client
	// Notifier receives fired reminders instead of the configured one.
	Notifier adapter.ReminderNotifier
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	// Create repositories
	schema := persistence.NewSchemaManager(db)
	categoryRepo := persistence.NewCategoryRepository(db, schema)
	itemRepo := persistence.NewItemRepository(db, schema)

	redisClient := opts.Redis
	if redisClient == nil && cfg.Settings.Backend == SettingsBackendRedis {
		client, err := newRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		redisClient = client
	}

	var settingsStore adapter.SettingsStore
	switch {
	case redisClient != nil:
		settingsStore = cache.NewRedisSettingsStore(redisClient)
	case cfg.Settings.Backend == SettingsBackendDatabase || cfg.Settings.Backend == "":
		settingsStore = persistence.NewSettingsRepository(db, schema)
	default:
		return nil, fmt.Errorf("unsupported settings backend %q", cfg.Settings.Backend)
	}

	// Create notification services
	notifier := opts.Notifier
	if notifier == nil {
		n, err := newNotifier(&cfg.Email)
		if err != nil {
			return nil, err
		}
		notifier = n
	}
	platform := notification.NewCronPlatform(cfg.Reminder.Location(), notifier)
	scheduler := notification.NewWeeklyScheduler(platform)
	reminderContent := entity.NotificationContent{
		Title: cfg.Reminder.Title,
		Body:  cfg.Reminder.Body,
	}

	// Create the inventory session
	session := inventory.NewSession(
		inventory.NewGetInventoryUseCase(categoryRepo, itemRepo),
		inventory.NewMutations(categoryRepo, itemRepo),
		inventory.NewReducer(inventory.NewSorter(cfg.Inventory.CollationLocale)),
	)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsStore)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsStore)
	toggleCollapsedUseCase := settings.NewToggleCategoryCollapsedUseCase(settingsStore)
	isCollapsedUseCase := settings.NewIsCategoryCollapsedUseCase(settingsStore)
	getReminderUseCase := settings.NewGetReminderUseCase(settingsStore)
	scheduleReminderUseCase := settings.NewScheduleReminderUseCase(settingsStore, scheduler, reminderContent)
	cancelReminderUseCase := settings.NewCancelReminderUseCase(settingsStore, scheduler)
	restoreReminderUseCase := settings.NewRestoreReminderUseCase(settingsStore, scheduler)

	// Create controllers
	dbHealthChecker := opts.DBHealthChecker
	if dbHealthChecker == nil {
		dbHealthChecker = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}
	healthController := controller.NewHealthController(dbHealthChecker, func() string {
		return string(session.Snapshot().Status)
	})
	inventoryController := controller.NewInventoryController(session, category.NewListCategoriesUseCase(categoryRepo))
	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
		toggleCollapsedUseCase,
		isCollapsedUseCase,
	)
	reminderController := controller.NewReminderController(
		getReminderUseCase,
		scheduleReminderUseCase,
		cancelReminderUseCase,
	)

	// Create router
	r := router.NewRouter(healthController, inventoryController, settingsController, reminderController)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Redis:           redisClient,
		Schema:          schema,
		Session:         session,
		Platform:        platform,
		Router:          r,
		restoreReminder: restoreReminderUseCase,
	}, nil
}

// Start prepares the schema, loads the inventory and brings the stored
// reminder back. A failing schema or load aborts startup; a reminder that
// cannot be restored is only logged.
func (i *Injector) Start(ctx context.Context) error {
	if err := i.Schema.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}
	if err := i.Session.Load(ctx); err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	if !i.Config.Reminder.Enabled {
		slog.InfoContext(ctx, "Weekly reminders disabled")
		return nil
	}

	i.Platform.Start()
	output, err := i.restoreReminder.Execute(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to restore reminder", "error", err)
		return nil
	}
	if output.Restored {
		slog.InfoContext(ctx, "Weekly reminder restored", "identifier", output.Reminder.Identifier)
	}
	return nil
}

// Stop halts the reminder runner and closes the Redis client when one was opened.
func (i *Injector) Stop() {
	i.Platform.Stop()
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			slog.Error("Failed to close Redis client", "error", err)
		}
	}
}

func newRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	return redis.NewClient(opts), nil
}

func newNotifier(cfg *config.EmailConfig) (adapter.ReminderNotifier, error) {
	if cfg.ResendAPIKey == "" || cfg.Recipient == "" {
		slog.Info("Resend not configured, reminders will be logged")
		return email.NewLogNotifier(), nil
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	notifier, err := email.NewResendNotifier(email.ResendConfig{
		APIKey:    cfg.ResendAPIKey,
		BaseURL:   cfg.ResendBaseURL,
		FromName:  cfg.FromName,
		FromEmail: cfg.FromEmail,
		Recipient: cfg.Recipient,
	}, renderer)
	if err != nil {
		return nil, err
	}
	return notifier, nil
}
