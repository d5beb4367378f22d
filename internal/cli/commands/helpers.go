package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"GiftKiosk/internal/catalog"
	"GiftKiosk/internal/cli/api"
	fsrepo "GiftKiosk/internal/cli/repo/fs"
	"GiftKiosk/internal/cli/session"
	"GiftKiosk/internal/config"
	"GiftKiosk/internal/model"
)

// clientFrom собирает API-клиент с провайдером сессии из контекста.
func clientFrom(ctx context.Context, cfg *config.Config) *api.Client {
	sp, ok := session.FromContext(ctx)
	if !ok {
		sp = session.Load(fsrepo.NewSessionStore(cfg.SessionDir))
	}
	return api.NewClient(cfg.ServerURL, sp)
}

// explain переводит ошибки сервера в понятные сообщения.
func explain(err error) error {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.Status {
	case http.StatusForbidden:
		return errors.New("admin login required (run: login <password>)")
	case http.StatusUnauthorized:
		return errors.New("wrong password")
	case http.StatusNotFound:
		return errors.New("not found")
	default:
		return err
	}
}

// printItems выводит позиции по категориям с позициями 1..N, как их принимает reorder.
func printItems(items []model.GiftItem) {
	if len(items) == 0 {
		fmt.Fprintln(Out, "Каталог пуст")
		return
	}
	for _, c := range []model.Category{model.CategoryA, model.CategoryB} {
		group := catalog.InCategory(items, c)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(Out, "Category %s:\n", c)
		for i, it := range group {
			flags := ""
			if !it.Visible {
				flags += " (hidden)"
			}
			if it.AllowMultiple {
				flags += " (x2)"
			}
			fmt.Fprintf(Out, "  %d. %s  id=%s%s\n", i+1, it.Name, it.ID, flags)
		}
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
}

// afterMutation перечитывает список, если сервер попросил.
func afterMutation(ctx context.Context, mut api.Mutation, reload func(context.Context) error) error {
	if !mut.Invalidate {
		return nil
	}
	return reload(ctx)
}

func reloadItems(c *api.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		items, err := c.Items(ctx)
		if err != nil {
			return explain(err)
		}
		printItems(items)
		return nil
	}
}
