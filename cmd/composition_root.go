package cmd

import (
	"fmt"
	"log/slog"

	"github.com/marribaloch/Indian-food/internal/adapters/out/geo"
	"github.com/marribaloch/Indian-food/internal/adapters/out/notify"
	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres"
	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres/orderrepo"
	"github.com/marribaloch/Indian-food/internal/adapters/out/postgres/presencerepo"
	"github.com/marribaloch/Indian-food/internal/core/application/usecases/commands"
	"github.com/marribaloch/Indian-food/internal/core/application/usecases/queries"
	"github.com/marribaloch/Indian-food/internal/core/domain/model/kernel"
	"github.com/marribaloch/Indian-food/internal/core/domain/services"
	"github.com/marribaloch/Indian-food/internal/core/ports"
	"github.com/marribaloch/Indian-food/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Everything the
// application serves is created here and nowhere else.
type CompositionRoot struct {
	config        Config
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	feeCalculator services.FeeCalculator
	geoEstimator  ports.GeoEstimator
	notifier      ports.Notifier
	origin        kernel.Location
	logger        *slog.Logger
}

// NewCompositionRoot builds the object graph from configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	feeCalculator, err := buildFeeCalculator(config)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("pricing config: %w", err)
	}

	origin, err := kernel.NewLocation(config.RestaurantLat, config.RestaurantLng)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("restaurant location: %w", err)
	}

	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		feeCalculator: feeCalculator,
		geoEstimator:  buildGeoEstimator(config, logger),
		notifier:      buildNotifier(config, logger),
		origin:        origin,
		logger:        logger,
	}, nil
}

func buildFeeCalculator(config Config) (services.FeeCalculator, error) {
	mode := services.PricingModeFlat
	if config.PricingMode == "dynamic" {
		mode = services.PricingModeDynamic
	}

	pricing, err := services.NewPricingConfig(
		mode,
		config.FlatDeliveryFee,
		config.BaseDeliveryFee,
		config.PerKmFee,
		config.PerMinFee,
		config.MinDeliveryFee,
		config.MaxDeliveryFee,
		config.ServiceFeePercent,
	)
	if err != nil {
		return services.FeeCalculator{}, err
	}
	return services.NewFeeCalculator(pricing)
}

func buildGeoEstimator(config Config, logger *slog.Logger) ports.GeoEstimator {
	local := geo.NewLocalEstimator()
	if config.GoogleMapsAPIKey == "" {
		return local
	}
	return geo.NewResilientEstimator(geo.NewGoogleEstimator(config.GoogleMapsAPIKey), local, logger)
}

func buildNotifier(config Config, logger *slog.Logger) ports.Notifier {
	var channels []ports.Notifier

	if config.SMTPHost != "" {
		channels = append(channels, notify.NewSMTPNotifier(
			config.SMTPHost,
			config.SMTPPort,
			config.SMTPUsername,
			config.SMTPPassword,
			config.SMTPFrom,
		))
	}

	if config.TelegramBotToken != "" {
		telegram, err := notify.NewTelegramNotifier(config.TelegramBotToken, config.TelegramChatID)
		if err != nil {
			logger.Warn("Telegram notifier disabled", "error", err)
		} else {
			channels = append(channels, telegram)
		}
	}

	if len(channels) == 0 {
		return notify.NewLogNotifier(logger)
	}
	return notify.NewMultiNotifier(channels...)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.geoEstimator, c.feeCalculator, c.notifier, c.origin)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateReportPresenceCommandHandler() commands.ReportPresenceCommandHandler {
	var f commands.PresenceUoWFactory = FuncPresenceUoWFactory(func() commands.PresenceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportPresenceCommandHandler(f)
}

func (c *CompositionRoot) CreateDriverUpdateCommandHandler() commands.DriverUpdateCommandHandler {
	var f commands.DriverUpdateUoWFactory = FuncDriverUpdateUoWFactory(func() commands.DriverUpdateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDriverUpdateCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDispatchableOrdersQueryHandler() queries.ListDispatchableOrdersQueryHandler {
	return queries.NewListDispatchableOrdersQueryHandler(c.gormDB)
}

// CreateJobManager builds the background job manager on repositories bound
// directly to the database; jobs manage no transactions of their own.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	orders := orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{})
	presence := presencerepo.NewGormPresenceRepository(c.gormDB)
	return jobs.NewJobManager(orders, presence, c.config.PresenceMaxAge, c.logger)
}

// noopTracker satisfies the order repository's aggregate tracking outside a
// unit of work, where nothing needs the identity map.
type noopTracker struct{}

func (noopTracker) TrackAggregate(int64, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncPresenceUoWFactory func() commands.PresenceUoW

func (f FuncPresenceUoWFactory) Create() commands.PresenceUoW {
	return f()
}

type FuncDriverUpdateUoWFactory func() commands.DriverUpdateUoW

func (f FuncDriverUpdateUoWFactory) Create() commands.DriverUpdateUoW {
	return f()
}
