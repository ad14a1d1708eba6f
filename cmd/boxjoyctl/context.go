package main

import (
	"context"
	"io"

	"github.com/ghuser/boxjoy/pkg/app"
	"github.com/ghuser/boxjoy/pkg/config"
	"github.com/ghuser/boxjoy/pkg/logger"
	appsvcs "github.com/ghuser/boxjoy/services/collection/application/services"
)

// commandContext opens the configured store for each command. Logs go to
// stderr so tables on stdout stay clean.
type commandContext struct {
	loadConfig func() (*config.Config, error)
	stderr     io.Writer
}

func newCommandContext(stderr io.Writer) *commandContext {
	return &commandContext{loadConfig: config.Load, stderr: stderr}
}

// withApplication opens the infrastructure, runs fn and closes everything again.
func (c *commandContext) withApplication(ctx context.Context, fn func(*app.Application) error) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	log := logger.NewWithWriter(cfg, c.stderr)

	a, err := app.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// withServices is withApplication plus a loaded collection.
func (c *commandContext) withServices(ctx context.Context, fn func(*appsvcs.Services) error) error {
	return c.withApplication(ctx, func(a *app.Application) error {
		svcs, err := appsvcs.New(ctx, a)
		if err != nil {
			return err
		}
		return fn(svcs)
	})
}
