package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-invoice-dashboard/internal/adapter"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
	"github.com/MKhiriev/go-invoice-dashboard/models"
)

const usage = `usage: client [flags] <command> [args]

commands:
  dashboard                          summary cards and latest invoices
  invoices [query] [page]            one page of the invoice table
  create customerId=<id> amount=<amount> status=<pending|paid>
                                     create an invoice; omitted fields are not sent
  version                            build information`

var (
	errUnknownCommand = errors.New("unknown command")
	errBadArgument    = errors.New("bad argument")
)

type commandLine struct {
	adapter     adapter.DashboardAdapter
	credentials models.Credentials
	buildInfo   models.AppBuildInfo
	out         io.Writer

	logger *logger.Logger
}

// run executes one command. Every command except version signs in first
// and signs out afterwards.
func (c *commandLine) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, _ = fmt.Fprintln(c.out, usage)
		return nil
	}

	command, rest := args[0], args[1:]
	if command == "version" {
		return c.print(c.buildInfo)
	}

	var do func(ctx context.Context, args []string) error
	switch command {
	case "dashboard":
		do = c.dashboard
	case "invoices":
		do = c.invoices
	case "create":
		do = c.create
	default:
		return fmt.Errorf("%w: %q\n%s", errUnknownCommand, command, usage)
	}

	if err := c.adapter.Login(ctx, c.credentials); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	defer func() {
		if err := c.adapter.Logout(ctx); err != nil {
			c.logger.Err(err).Str("func", "*commandLine.run").Msg("sign out failed")
		}
	}()

	return do(ctx, rest)
}

func (c *commandLine) dashboard(ctx context.Context, _ []string) error {
	page, err := c.adapter.Dashboard(ctx)
	if err != nil {
		return err
	}
	return c.print(page)
}

func (c *commandLine) invoices(ctx context.Context, args []string) error {
	var filter models.InvoiceFilter
	if len(args) > 0 {
		filter.Query = args[0]
	}
	if len(args) > 1 {
		page, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: page %q", errBadArgument, args[1])
		}
		filter.Page = page
	}

	page, err := c.adapter.ListInvoices(ctx, filter)
	if err != nil {
		return err
	}
	return c.print(page)
}

func (c *commandLine) create(ctx context.Context, args []string) error {
	var form models.InvoiceForm
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%w: %q is not key=value", errBadArgument, arg)
		}
		switch key {
		case "customerId":
			form.CustomerID = &value
		case "amount":
			form.Amount = &value
		case "status":
			form.Status = &value
		default:
			return fmt.Errorf("%w: unknown field %q", errBadArgument, key)
		}
	}

	state, err := c.adapter.CreateInvoice(ctx, form)
	if err != nil {
		if printErr := c.print(state); printErr != nil {
			c.logger.Err(printErr).Str("func", "*commandLine.create").Msg("form state could not be printed")
		}
		return err
	}

	_, err = fmt.Fprintln(c.out, "invoice created")
	return err
}

func (c *commandLine) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
