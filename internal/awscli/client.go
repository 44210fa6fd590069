package awscli

import (
	"context"

	"github.com/thoreinstein/awscmds/internal/helptext"
	"github.com/thoreinstein/awscmds/internal/logging"
)

const helpArg = "help"

// Client lists services and commands by scraping help pages.
type Client struct {
	runner Runner
}

// NewClient returns a Client that invokes the tool through runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// Services runs "aws help" and returns the sorted service names from its
// AVAILABLE SERVICES section. Execution failures are returned unchanged so
// callers can detect *errors.ExecError.
func (c *Client) Services(ctx context.Context) ([]string, error) {
	out, err := c.runner.Run(ctx, helpArg)
	if err != nil {
		return nil, err
	}
	services := helptext.Extract(out, helptext.ServicesSection())
	logging.FromContext(ctx).Debug("listed services", "count", len(services))
	return services, nil
}

// Commands runs "aws <service> help" and returns the sorted command names
// from its AVAILABLE COMMANDS section.
func (c *Client) Commands(ctx context.Context, service string) ([]string, error) {
	out, err := c.runner.Run(ctx, service, helpArg)
	if err != nil {
		return nil, err
	}
	commands := helptext.Extract(out, helptext.CommandsSection(service))
	logging.FromContext(ctx).Debug("listed commands", "service", service, "count", len(commands))
	return commands, nil
}
