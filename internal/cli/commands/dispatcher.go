package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	fsrepo "GiftKiosk/internal/cli/repo/fs"
	"GiftKiosk/internal/cli/session"
	"GiftKiosk/internal/config"
)

// Коды выхода giftkiosk.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Dispatch запускает команду из args и возвращает код выхода процесса.
// Справку и ошибки использования печатает сам.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if slices.Contains(os.Args[1:], "--help") || slices.Contains(os.Args[1:], "-h") {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" {
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		unknown(name)
		return exitUsage
	}

	// флаг админа читается с диска один раз и дальше живёт в контексте
	if _, ok := session.FromContext(ctx); !ok {
		ctx = session.WithProvider(ctx, session.Load(fsrepo.NewSessionStore(cfg.SessionDir)))
	}

	if err := c.Run(ctx, cfg, args[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return exitUsage
		}
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return exitError
	}
	return exitOK
}

// help — "help" и "help <command>".
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	c, ok := Get(strings.ToLower(args[0]))
	if !ok {
		unknown(args[0])
		return exitUsage
	}
	fmt.Fprint(Out, commandHelp(c))
	return exitOK
}

func unknown(name string) {
	fmt.Fprintf(Out, "Unknown command: %s\n", name)
	var near []string
	for _, c := range List() {
		if strings.HasPrefix(c.Name(), name) || strings.HasPrefix(name, c.Name()) {
			near = append(near, c.Name())
		}
	}
	if len(near) > 0 {
		fmt.Fprintf(Out, "Did you mean: %s?\n", strings.Join(near, ", "))
	}
	fmt.Fprintln(Out)
	fmt.Fprint(Out, FormatGlobalUsage())
}
