// Package app wires the application components together.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/streadway/amqp"

	"github.com/allisson/customers/internal/config"
	customerCommand "github.com/allisson/customers/internal/customer/command"
	customerHTTP "github.com/allisson/customers/internal/customer/http"
	customerQuery "github.com/allisson/customers/internal/customer/query"
	customerService "github.com/allisson/customers/internal/customer/service"
	"github.com/allisson/customers/internal/database"
	"github.com/allisson/customers/internal/http"
	"github.com/allisson/customers/internal/logging"
	"github.com/allisson/customers/internal/metrics"
	outboxRepository "github.com/allisson/customers/internal/outbox/repository"
	outboxUsecase "github.com/allisson/customers/internal/outbox/usecase"
)

// Container holds the application dependencies. Components are created on
// first access and cached; a failed initialization is cached too.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	amqpConn        *amqp.Connection
	amqpChannel     *amqp.Channel

	// Customers
	customerRepo          CustomerRepository
	customerByIDQuery     *customerQuery.CustomerByIDQuery
	allCustomersQuery     *customerQuery.AllCustomersQuery
	createCustomerCommand *customerCommand.CreateCustomerCommand
	deleteCustomerCommand *customerCommand.DeleteCustomerCommand
	customerService       customerService.CustomerService
	customerHandler       *customerHTTP.CustomerHandler

	// Outbox
	outboxRepo     outboxUsecase.OutboxEventRepository
	eventProcessor outboxUsecase.EventProcessor
	outboxUseCase  outboxUsecase.UseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                        sync.Mutex
	loggerInit                sync.Once
	dbInit                    sync.Once
	txManagerInit             sync.Once
	metricsProviderInit       sync.Once
	businessMetricsInit       sync.Once
	customerRepoInit          sync.Once
	customerByIDQueryInit     sync.Once
	allCustomersQueryInit     sync.Once
	createCustomerCommandInit sync.Once
	deleteCustomerCommandInit sync.Once
	customerServiceInit       sync.Once
	customerHandlerInit       sync.Once
	outboxRepoInit            sync.Once
	eventProcessorInit        sync.Once
	outboxUseCaseInit         sync.Once
	httpServerInit            sync.Once
	metricsServerInit         sync.Once
	initErrors                map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

func (c *Container) setInitError(name string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initErrors[name] = err
}

func (c *Container) initError(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[name]
}

// Logger returns the JSON logger writing to stdout at the configured level.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = logging.NewJSONLogger(os.Stdout, c.config.LogLevel)
	})
	return c.logger
}

// DB returns the database connection pool.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := database.Connect(database.Config{
			Driver:             c.config.DBDriver,
			ConnectionString:   c.config.DBConnectionString,
			MaxOpenConnections: c.config.DBMaxOpenConnections,
			MaxIdleConnections: c.config.DBMaxIdleConnections,
			ConnMaxLifetime:    c.config.DBConnMaxLifetime,
		})
		if err != nil {
			c.setInitError("db", fmt.Errorf("failed to connect to database: %w", err))
			return
		}
		c.db = db
	})
	if err := c.initError("db"); err != nil {
		return nil, err
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.setInitError("txManager", fmt.Errorf("failed to get database for tx manager: %w", err))
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if err := c.initError("txManager"); err != nil {
		return nil, err
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus-backed meter provider, or nil when
// metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.setInitError("metricsProvider", fmt.Errorf("failed to create metrics provider: %w", err))
			return
		}
		c.metricsProvider = provider
	})
	if err := c.initError("metricsProvider"); err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the operation metrics recorder. It is a no-op when
// metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.setInitError("businessMetrics", err)
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.setInitError("businessMetrics", fmt.Errorf("failed to create business metrics: %w", err))
			return
		}
		c.businessMetrics = bm
	})
	if err := c.initError("businessMetrics"); err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// OutboxRepository returns the outbox event repository for the configured driver.
func (c *Container) OutboxRepository() (outboxUsecase.OutboxEventRepository, error) {
	c.outboxRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.setInitError("outboxRepo", fmt.Errorf("failed to get database for outbox repository: %w", err))
			return
		}
		switch c.config.DBDriver {
		case "mysql":
			c.outboxRepo = outboxRepository.NewMySQLOutboxEventRepository(db)
		case "postgres":
			c.outboxRepo = outboxRepository.NewPostgreSQLOutboxEventRepository(db)
		default:
			c.setInitError("outboxRepo", fmt.Errorf("unsupported database driver: %s", c.config.DBDriver))
		}
	})
	if err := c.initError("outboxRepo"); err != nil {
		return nil, err
	}
	return c.outboxRepo, nil
}

// EventProcessor returns the AMQP publisher when AMQP_URL is set and the
// logging processor otherwise.
func (c *Container) EventProcessor() (outboxUsecase.EventProcessor, error) {
	c.eventProcessorInit.Do(func() {
		logger := c.Logger()
		if c.config.AMQPURL == "" {
			c.eventProcessor = outboxUsecase.NewLoggingEventProcessor(logger)
			return
		}

		conn, err := amqp.Dial(c.config.AMQPURL)
		if err != nil {
			c.setInitError("eventProcessor", fmt.Errorf("failed to connect to amqp broker: %w", err))
			return
		}
		channel, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			c.setInitError("eventProcessor", fmt.Errorf("failed to open amqp channel: %w", err))
			return
		}
		queue, err := outboxUsecase.DeclareQueue(channel, c.config.AMQPQueue)
		if err != nil {
			_ = channel.Close()
			_ = conn.Close()
			c.setInitError("eventProcessor", err)
			return
		}

		c.mu.Lock()
		c.amqpConn = conn
		c.amqpChannel = channel
		c.mu.Unlock()
		c.eventProcessor = outboxUsecase.NewAMQPEventProcessor(channel, queue, logger)
	})
	if err := c.initError("eventProcessor"); err != nil {
		return nil, err
	}
	return c.eventProcessor, nil
}

// OutboxUseCase returns the outbox worker.
func (c *Container) OutboxUseCase() (outboxUsecase.UseCase, error) {
	c.outboxUseCaseInit.Do(func() {
		useCase, err := c.initOutboxUseCase()
		if err != nil {
			c.setInitError("outboxUseCase", err)
			return
		}
		c.outboxUseCase = useCase
	})
	if err := c.initError("outboxUseCase"); err != nil {
		return nil, err
	}
	return c.outboxUseCase, nil
}

func (c *Container) initOutboxUseCase() (outboxUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for outbox use case: %w", err)
	}
	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for outbox use case: %w", err)
	}
	processor, err := c.EventProcessor()
	if err != nil {
		return nil, fmt.Errorf("failed to get event processor for outbox use case: %w", err)
	}

	return outboxUsecase.NewOutboxUseCase(
		outboxUsecase.Config{
			Interval:   c.config.WorkerInterval,
			BatchSize:  c.config.WorkerBatchSize,
			MaxRetries: c.config.WorkerMaxRetries,
		},
		txManager,
		outboxRepo,
		processor,
		c.Logger(),
	), nil
}

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.setInitError("httpServer", err)
			return
		}
		c.mu.Lock()
		c.httpServer = server
		c.mu.Unlock()
	})
	if err := c.initError("httpServer"); err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}
	handler, err := c.CustomerHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer handler for http server: %w", err)
	}
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(c.config, handler, provider)
	return server, nil
}

// MetricsServer returns the Prometheus scrape server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.setInitError("metricsServer", fmt.Errorf("failed to get metrics provider for metrics server: %w", err))
			return
		}
		if provider == nil {
			return
		}
		server := http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
		c.mu.Lock()
		c.metricsServer = server
		c.mu.Unlock()
	})
	if err := c.initError("metricsServer"); err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown releases every initialized resource.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		}
	}
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}
	if c.amqpChannel != nil {
		if err := c.amqpChannel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp channel close: %w", err))
		}
	}
	if c.amqpConn != nil {
		if err := c.amqpConn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp connection close: %w", err))
		}
	}
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(errs...)
}
