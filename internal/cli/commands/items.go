package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"GiftKiosk/internal/cli/api"
	"GiftKiosk/internal/config"
	"GiftKiosk/internal/model"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "Показать все позиции каталога, включая скрытые" }
func (itemsCmd) Usage() string       { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return reloadItems(clientFrom(ctx, cfg))(ctx)
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Добавить позицию (в конец категории)" }
func (itemAddCmd) Usage() string {
	return "item-add --category=A|B [--description=..] [--image=path] <name>"
}

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("item-add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.String("category", "", "категория: A|B")
	description := fs.String("description", "", "описание")
	imagePath := fs.String("image", "", "путь к картинке")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	name := strings.TrimSpace(strings.Join(fs.Args(), " "))
	cat := model.Category(strings.ToUpper(*category))
	if name == "" || !cat.Valid() {
		return ErrUsage
	}

	in := api.NewItem{Name: name, Category: cat, Description: *description}
	if *imagePath != "" {
		content, err := os.ReadFile(*imagePath)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		in.Image = &api.FilePart{Field: "image", Name: filepath.Base(*imagePath), Content: content}
	}

	c := clientFrom(ctx, cfg)
	item, mut, err := c.AddItem(ctx, in)
	if err != nil {
		return explain(err)
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:       %s\n", item.ID)
	fmt.Fprintf(Out, "  name:     %s\n", item.Name)
	fmt.Fprintf(Out, "  category: %s\n", item.Category)
	if item.ImageURL != "" {
		fmt.Fprintf(Out, "  image:    %s\n", item.ImageURL)
	}
	return afterMutation(ctx, mut, reloadItems(c))
}

// optBool — флаг, который отличает «не задан» от false.
type optBool struct{ v *bool }

func (o *optBool) String() string {
	if o.v == nil {
		return ""
	}
	return strconv.FormatBool(*o.v)
}

func (o *optBool) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	o.v = &b
	return nil
}

func (o *optBool) IsBoolFlag() bool { return true }

type itemEditCmd struct{}

func (itemEditCmd) Name() string        { return "item-edit" }
func (itemEditCmd) Description() string { return "Изменить поля позиции" }
func (itemEditCmd) Usage() string {
	return "item-edit [--name=..] [--description=..] [--visible=true|false] [--multiple=true|false] <id>"
}

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("item-edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var patch model.ItemPatch
	var visible, multiple optBool
	fs.Func("name", "новое имя", func(s string) error { patch.Name = &s; return nil })
	fs.Func("description", "новое описание", func(s string) error { patch.Description = &s; return nil })
	fs.Var(&visible, "visible", "показывать в киоске")
	fs.Var(&multiple, "multiple", "можно взять дважды")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 1 {
		return ErrUsage
	}
	patch.Visible = visible.v
	patch.AllowMultiple = multiple.v
	if patch.Empty() {
		return ErrUsage
	}

	c := clientFrom(ctx, cfg)
	item, mut, err := c.UpdateItem(ctx, fs.Arg(0), patch)
	if err != nil {
		return explain(err)
	}
	fmt.Fprintf(Out, "Updated: %s (%s)\n", item.Name, item.ID)
	return afterMutation(ctx, mut, reloadItems(c))
}

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string        { return "item-delete" }
func (itemDeleteCmd) Description() string { return "Удалить позицию" }
func (itemDeleteCmd) Usage() string       { return "item-delete <id>" }

func (itemDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	c := clientFrom(ctx, cfg)
	mut, err := c.DeleteItem(ctx, args[0])
	if err != nil {
		return explain(err)
	}
	fmt.Fprintf(Out, "Deleted: %s\n", args[0])
	return afterMutation(ctx, mut, reloadItems(c))
}

type reorderCmd struct{}

func (reorderCmd) Name() string        { return "reorder" }
func (reorderCmd) Description() string { return "Переставить позицию внутри категории (номера как в items)" }
func (reorderCmd) Usage() string       { return "reorder <A|B> <from> <to>" }

func (reorderCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	cat := model.Category(strings.ToUpper(args[0]))
	from, err1 := strconv.Atoi(args[1])
	to, err2 := strconv.Atoi(args[2])
	if !cat.Valid() || err1 != nil || err2 != nil || from < 1 || to < 1 {
		return ErrUsage
	}

	c := clientFrom(ctx, cfg)
	assignments, mut, err := c.Reorder(ctx, cat, from-1, to-1)
	if err != nil {
		// даже неудачная запись просит перечитать каталог
		if rerr := afterMutation(ctx, mut, reloadItems(c)); rerr != nil {
			fmt.Fprintf(Out, "reload failed: %v\n", rerr)
		}
		return explain(err)
	}
	fmt.Fprintf(Out, "Reordered category %s: %d positions updated\n", cat, len(assignments))
	return afterMutation(ctx, mut, reloadItems(c))
}

func init() {
	register(SectionAdmin, itemsCmd{}, itemAddCmd{}, itemEditCmd{}, itemDeleteCmd{}, reorderCmd{})
}
