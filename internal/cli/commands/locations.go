package commands

import (
	"context"
	"fmt"
	"strings"

	"GiftKiosk/internal/cli/api"
	"GiftKiosk/internal/config"
)

type locationsCmd struct{}

func (locationsCmd) Name() string        { return "locations" }
func (locationsCmd) Description() string { return "Пункты выдачи" }
func (locationsCmd) Usage() string       { return "locations" }

func (locationsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return reloadLocations(clientFrom(ctx, cfg))(ctx)
}

func reloadLocations(c *api.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		locs, err := c.Locations(ctx)
		if err != nil {
			return explain(err)
		}
		for _, l := range locs {
			fmt.Fprintf(Out, "- %s  %s\n", l.ID, l.Name)
		}
		fmt.Fprintf(Out, "Всего: %d\n", len(locs))
		return nil
	}
}

type locationAddCmd struct{}

func (locationAddCmd) Name() string        { return "location-add" }
func (locationAddCmd) Description() string { return "Добавить пункт выдачи" }
func (locationAddCmd) Usage() string       { return "location-add <name>" }

func (locationAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return ErrUsage
	}
	c := clientFrom(ctx, cfg)
	loc, mut, err := c.AddLocation(ctx, name)
	if err != nil {
		return explain(err)
	}
	fmt.Fprintf(Out, "Created: %s (%s)\n", loc.Name, loc.ID)
	return afterMutation(ctx, mut, reloadLocations(c))
}

func init() {
	register(SectionAdmin, locationsCmd{}, locationAddCmd{})
}
