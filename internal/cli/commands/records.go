package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"GiftKiosk/internal/cli/api"
	"GiftKiosk/internal/config"
)

type recordsCmd struct{}

func (recordsCmd) Name() string        { return "records" }
func (recordsCmd) Description() string { return "Журнал выдачи, новые сверху" }
func (recordsCmd) Usage() string       { return "records" }

func (recordsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return reloadRecords(clientFrom(ctx, cfg))(ctx)
}

func reloadRecords(c *api.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		recs, err := c.Records(ctx)
		if err != nil {
			return explain(err)
		}
		if len(recs) == 0 {
			fmt.Fprintln(Out, "Нет записей")
			return nil
		}
		for _, r := range recs {
			loc := ""
			if r.LocationID != nil {
				loc = "  location=" + *r.LocationID
			}
			fmt.Fprintf(Out, "- %s  %s  %s  [%s]%s\n",
				r.ID, r.Timestamp.Local().Format(time.DateTime), r.Name, strings.Join(r.Items, ", "), loc)
		}
		fmt.Fprintf(Out, "Всего: %d\n", len(recs))
		return nil
	}
}

type recordDeleteCmd struct{}

func (recordDeleteCmd) Name() string        { return "record-delete" }
func (recordDeleteCmd) Description() string { return "Удалить запись журнала" }
func (recordDeleteCmd) Usage() string       { return "record-delete <id>" }

func (recordDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	c := clientFrom(ctx, cfg)
	mut, err := c.DeleteRecord(ctx, args[0])
	if err != nil {
		return explain(err)
	}
	fmt.Fprintf(Out, "Deleted: %s\n", args[0])
	return afterMutation(ctx, mut, reloadRecords(c))
}

func init() {
	register(SectionAdmin, recordsCmd{}, recordDeleteCmd{})
}
