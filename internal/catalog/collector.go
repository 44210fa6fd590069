package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/thoreinstein/awscmds/internal/errors"
	"github.com/thoreinstein/awscmds/internal/logging"
)

// Lister is the source of services and their commands.
type Lister interface {
	Services(ctx context.Context) ([]string, error)
	Commands(ctx context.Context, service string) ([]string, error)
}

// Collector walks every service a Lister reports and gathers its commands.
// Services are visited one at a time, in the order listed.
type Collector struct {
	lister   Lister
	progress io.Writer
}

// NewCollector returns a Collector that reports progress to w. A nil w
// discards progress lines.
func NewCollector(lister Lister, w io.Writer) *Collector {
	if w == nil {
		w = io.Discard
	}
	return &Collector{lister: lister, progress: w}
}

// Collect builds the catalog.
//
// A failure to list services aborts the run. A tool failure for a single
// service is reported on the progress writer as
// "Error processing <service>: <err>" and the walk moves on; any other error,
// such as a cancelled context, aborts. Each stored service is reported as
// "Processed <service>: <n> commands found". Services without commands are
// left out silently.
func (c *Collector) Collect(ctx context.Context) (*Catalog, error) {
	logger := logging.FromContext(ctx)

	services, err := c.lister.Services(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing services")
	}
	logger.Info("discovered services", "count", len(services))

	cat := New()
	var failed int
	for _, service := range services {
		commands, err := c.lister.Commands(ctx, service)
		if err != nil {
			if !errors.IsExecError(err) {
				return nil, errors.Wrapf(err, "listing commands for %s", service)
			}
			failed++
			logger.Warn("skipping service", "service", service, "error", err)
			fmt.Fprintf(c.progress, "Error processing %s: %v\n", service, err)
			continue
		}
		if !cat.Add(service, commands) {
			logger.Debug("service has no commands", "service", service)
			continue
		}
		fmt.Fprintf(c.progress, "Processed %s: %d commands found\n", service, len(commands))
	}

	logger.Info("collected catalog",
		"services", cat.Len(),
		"failed", failed)
	return cat, nil
}
