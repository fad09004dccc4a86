package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/customers/cmd/app/commands"
	"github.com/allisson/customers/internal/app"
	"github.com/allisson/customers/internal/config"
	customerService "github.com/allisson/customers/internal/customer/service"
)

// withCustomerService builds a container, hands its customer service to run
// and releases the container afterwards.
func withCustomerService(
	ctx context.Context,
	run func(svc customerService.CustomerService, container *app.Container) error,
) error {
	container := app.NewContainer(config.Load())
	defer func() { _ = container.Shutdown(ctx) }()

	svc, err := container.CustomerService()
	if err != nil {
		return err
	}
	return run(svc, container)
}

func idFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:     "id",
		Aliases:  []string{"i"},
		Required: true,
		Usage:    "Customer ID",
	}
}

func getCustomerCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-customer",
			Usage: "Create a new customer",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "first-name",
					Required: true,
					Usage:    "Customer first name",
				},
				&cli.StringFlag{
					Name:     "last-name",
					Required: true,
					Usage:    "Customer last name",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withCustomerService(ctx, func(svc customerService.CustomerService, c *app.Container) error {
					return commands.RunCreateCustomer(
						ctx,
						svc,
						c.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("first-name"),
						cmd.String("last-name"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "list-customers",
			Usage: "List all customers",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withCustomerService(ctx, func(svc customerService.CustomerService, c *app.Container) error {
					return commands.RunListCustomers(
						ctx,
						svc,
						c.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "get-customer",
			Usage: "Show a customer",
			Flags: []cli.Flag{idFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withCustomerService(ctx, func(svc customerService.CustomerService, c *app.Container) error {
					return commands.RunGetCustomer(
						ctx,
						svc,
						c.Logger(),
						commands.DefaultIO().Writer,
						cmd.Int("id"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "delete-customer",
			Usage: "Delete a customer",
			Flags: []cli.Flag{idFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withCustomerService(ctx, func(svc customerService.CustomerService, c *app.Container) error {
					return commands.RunDeleteCustomer(
						ctx,
						svc,
						c.Logger(),
						commands.DefaultIO().Writer,
						cmd.Int("id"),
						cmd.String("format"),
					)
				})
			},
		},
	}
}
