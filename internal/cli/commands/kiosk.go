package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"GiftKiosk/internal/catalog"
	"GiftKiosk/internal/cli/api"
	"GiftKiosk/internal/config"
	"GiftKiosk/internal/model"
	"GiftKiosk/internal/selection"
)

const kioskHelp = "commands: list | pick <n|name> | drop <name> | name <text> | submit | reset | quit"

type kioskCmd struct{}

func (kioskCmd) Name() string        { return "kiosk" }
func (kioskCmd) Description() string { return "Интерактивный режим выбора подарков" }
func (kioskCmd) Usage() string       { return "kiosk [--location=ID]" }

func (kioskCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("kiosk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	location := fs.String("location", "", "id пункта выдачи")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	c := clientFrom(ctx, cfg)
	k := &kiosk{client: c, location: *location}
	if k.location != "" {
		name, err := c.LocationName(ctx, k.location)
		if err != nil {
			return explain(err)
		}
		fmt.Fprintf(Out, "GiftKiosk: %s\n", name)
	}
	items, err := c.Catalog(ctx)
	if err != nil {
		return explain(err)
	}
	k.sess = selection.NewSession(items)
	k.render()
	fmt.Fprintln(Out, kioskHelp)

	sc := bufio.NewScanner(In)
	for {
		fmt.Fprint(Out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(Out)
			return sc.Err()
		}
		if ctx.Err() != nil {
			return nil
		}
		quit, err := k.handle(ctx, sc.Text())
		if err != nil {
			fmt.Fprintf(Out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

type kiosk struct {
	client   *api.Client
	location string
	sess     *selection.Session
}

// handle выполняет одну строку ввода; true — выйти из цикла.
func (k *kiosk) handle(ctx context.Context, line string) (bool, error) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	switch strings.ToLower(cmd) {
	case "":
	case "list", "ls":
		k.render()
	case "pick":
		name, ok := k.resolve(rest)
		if !ok {
			return false, fmt.Errorf("unknown gift %q", rest)
		}
		if !k.sess.Pick(name) {
			return false, fmt.Errorf("%s cannot be selected now", name)
		}
		k.summary()
	case "drop":
		name, ok := k.resolve(rest)
		if !ok || !k.sess.Drop(name) {
			return false, fmt.Errorf("%q is not selected", rest)
		}
		k.summary()
	case "name":
		k.sess.SetName(rest)
		k.summary()
	case "submit":
		return false, k.submit(ctx)
	case "reset":
		k.sess.Reset()
		k.summary()
	case "quit", "exit", "q":
		return true, nil
	default:
		fmt.Fprintln(Out, kioskHelp)
	}
	return false, nil
}

// resolve принимает номер из list (с 1) или точное имя.
func (k *kiosk) resolve(arg string) (string, bool) {
	if arg == "" {
		return "", false
	}
	cat := k.ordered()
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(cat) {
			return "", false
		}
		return cat[n-1].Name, true
	}
	for _, it := range cat {
		if it.Name == arg {
			return arg, true
		}
	}
	return "", false
}

func (k *kiosk) ordered() []model.GiftItem {
	return catalog.Visible(k.sess.Catalog())
}

func (k *kiosk) render() {
	picked := map[string]int{}
	for _, p := range k.sess.Picks() {
		picked[p]++
	}
	var last model.Category
	for i, it := range k.ordered() {
		if it.Category != last {
			fmt.Fprintf(Out, "Category %s:\n", it.Category)
			last = it.Category
		}
		mark := "   "
		switch {
		case picked[it.Name] > 0:
			mark = fmt.Sprintf("[%d]", picked[it.Name])
		case !k.sess.Selectable(it.Name):
			mark = " - "
		}
		fmt.Fprintf(Out, "  %s %d. %s", mark, i+1, it.Name)
		if it.Description != "" {
			fmt.Fprintf(Out, "  %s", it.Description)
		}
		fmt.Fprintln(Out)
	}
	k.summary()
}

func (k *kiosk) summary() {
	parts := make([]string, 0, selection.MaxPicks)
	for _, c := range k.sess.Summary() {
		parts = append(parts, c.String())
	}
	sel := strings.Join(parts, ", ")
	if sel == "" {
		sel = "nothing yet"
	}
	fmt.Fprintf(Out, "Selected: %s (%d/%d)", sel, len(k.sess.Picks()), selection.MaxPicks)
	if n := k.sess.Name(); n != "" {
		fmt.Fprintf(Out, "  name: %s", n)
	}
	fmt.Fprintln(Out)
}

func (k *kiosk) submit(ctx context.Context) error {
	if !k.sess.Ready() {
		return errors.New("pick exactly two gifts and enter a name first")
	}
	rec, err := k.client.Submit(ctx, k.sess.Name(), k.sess.Picks(), k.location)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnprocessableEntity {
			// каталог поменялся: перечитываем и проигрываем выбор заново
			if items, cerr := k.client.Catalog(ctx); cerr == nil {
				k.sess.Refresh(items)
				k.render()
			}
		}
		return explain(err)
	}
	fmt.Fprintf(Out, "Thank you, %s! Recorded: %s\n", rec.Name, strings.Join(rec.Items, ", "))

	k.sess.Reset()
	items, err := k.client.Catalog(ctx)
	if err != nil {
		return explain(err)
	}
	k.sess.Refresh(items)
	k.render()
	return nil
}

func init() { register(SectionKiosk, kioskCmd{}) }
