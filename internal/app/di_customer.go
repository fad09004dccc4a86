package app

import (
	"fmt"

	customerCommand "github.com/allisson/customers/internal/customer/command"
	customerHTTP "github.com/allisson/customers/internal/customer/http"
	customerMapper "github.com/allisson/customers/internal/customer/mapper"
	customerQuery "github.com/allisson/customers/internal/customer/query"
	customerRepository "github.com/allisson/customers/internal/customer/repository"
	customerService "github.com/allisson/customers/internal/customer/service"
	"github.com/allisson/customers/internal/database"
	"github.com/allisson/customers/internal/logging"
)

// CustomerRepository is implemented by both SQL customer repositories.
type CustomerRepository interface {
	customerQuery.CustomerReader
	customerCommand.CustomerWriter
}

// CustomerRepository returns the customer repository for the configured driver.
func (c *Container) CustomerRepository() (CustomerRepository, error) {
	c.customerRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.setInitError("customerRepo", fmt.Errorf("failed to get database for customer repository: %w", err))
			return
		}
		switch c.config.DBDriver {
		case "mysql":
			c.customerRepo = customerRepository.NewMySQLCustomerRepository(db)
		case "postgres":
			c.customerRepo = customerRepository.NewPostgreSQLCustomerRepository(db)
		default:
			c.setInitError("customerRepo", fmt.Errorf("unsupported database driver: %s", c.config.DBDriver))
		}
	})
	if err := c.initError("customerRepo"); err != nil {
		return nil, err
	}
	return c.customerRepo, nil
}

// CustomerByIDQuery returns the single-customer lookup.
func (c *Container) CustomerByIDQuery() (*customerQuery.CustomerByIDQuery, error) {
	c.customerByIDQueryInit.Do(func() {
		repo, err := c.CustomerRepository()
		if err != nil {
			c.setInitError("customerByIDQuery", err)
			return
		}
		c.customerByIDQuery = customerQuery.NewCustomerByIDQuery(repo)
	})
	if err := c.initError("customerByIDQuery"); err != nil {
		return nil, err
	}
	return c.customerByIDQuery, nil
}

// AllCustomersQuery returns the customer listing query.
func (c *Container) AllCustomersQuery() (*customerQuery.AllCustomersQuery, error) {
	c.allCustomersQueryInit.Do(func() {
		repo, err := c.CustomerRepository()
		if err != nil {
			c.setInitError("allCustomersQuery", err)
			return
		}
		c.allCustomersQuery = customerQuery.NewAllCustomersQuery(repo)
	})
	if err := c.initError("allCustomersQuery"); err != nil {
		return nil, err
	}
	return c.allCustomersQuery, nil
}

// CreateCustomerCommand returns the command that stores customers.
func (c *Container) CreateCustomerCommand() (*customerCommand.CreateCustomerCommand, error) {
	c.createCustomerCommandInit.Do(func() {
		txManager, repo, outboxRepo, err := c.commandDependencies()
		if err != nil {
			c.setInitError("createCustomerCommand", err)
			return
		}
		c.createCustomerCommand = customerCommand.NewCreateCustomerCommand(txManager, repo, outboxRepo)
	})
	if err := c.initError("createCustomerCommand"); err != nil {
		return nil, err
	}
	return c.createCustomerCommand, nil
}

// DeleteCustomerCommand returns the command that removes customers.
func (c *Container) DeleteCustomerCommand() (*customerCommand.DeleteCustomerCommand, error) {
	c.deleteCustomerCommandInit.Do(func() {
		txManager, repo, outboxRepo, err := c.commandDependencies()
		if err != nil {
			c.setInitError("deleteCustomerCommand", err)
			return
		}
		c.deleteCustomerCommand = customerCommand.NewDeleteCustomerCommand(txManager, repo, outboxRepo)
	})
	if err := c.initError("deleteCustomerCommand"); err != nil {
		return nil, err
	}
	return c.deleteCustomerCommand, nil
}

func (c *Container) commandDependencies() (
	database.TxManager,
	CustomerRepository,
	customerCommand.OutboxEventWriter,
	error,
) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get tx manager for customer commands: %w", err)
	}
	repo, err := c.CustomerRepository()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get customer repository for customer commands: %w", err)
	}
	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get outbox repository for customer commands: %w", err)
	}
	return txManager, repo, outboxRepo, nil
}

// CustomerService returns the customer service, wrapped with metrics when enabled.
func (c *Container) CustomerService() (customerService.CustomerService, error) {
	c.customerServiceInit.Do(func() {
		svc, err := c.initCustomerService()
		if err != nil {
			c.setInitError("customerService", err)
			return
		}
		c.customerService = svc
	})
	if err := c.initError("customerService"); err != nil {
		return nil, err
	}
	return c.customerService, nil
}

func (c *Container) initCustomerService() (customerService.CustomerService, error) {
	byID, err := c.CustomerByIDQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by id query for customer service: %w", err)
	}
	all, err := c.AllCustomersQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to get all customers query for customer service: %w", err)
	}
	create, err := c.CreateCustomerCommand()
	if err != nil {
		return nil, fmt.Errorf("failed to get create customer command for customer service: %w", err)
	}
	remove, err := c.DeleteCustomerCommand()
	if err != nil {
		return nil, fmt.Errorf("failed to get delete customer command for customer service: %w", err)
	}

	svc := customerService.NewCustomerService(
		logging.NewSlogLogger(c.Logger(), "customer_service"),
		customerMapper.NewCustomerMapper(),
		byID,
		all,
		create,
		remove,
	)

	if !c.config.MetricsEnabled {
		return svc, nil
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for customer service: %w", err)
	}
	return customerService.NewCustomerServiceWithMetrics(svc, businessMetrics), nil
}

// CustomerHandler returns the HTTP handler for /v1/customers.
func (c *Container) CustomerHandler() (*customerHTTP.CustomerHandler, error) {
	c.customerHandlerInit.Do(func() {
		svc, err := c.CustomerService()
		if err != nil {
			c.setInitError("customerHandler", err)
			return
		}
		c.customerHandler = customerHTTP.NewCustomerHandler(svc, c.Logger())
	})
	if err := c.initError("customerHandler"); err != nil {
		return nil, err
	}
	return c.customerHandler, nil
}
