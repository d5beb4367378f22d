package commands

import (
	"context"
	"fmt"

	"GiftKiosk/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Войти в админку и сохранить сессию" }
func (loginCmd) Usage() string       { return "login <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	if err := clientFrom(ctx, cfg).Login(ctx, args[0]); err != nil {
		return explain(err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Выйти из админки" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := clientFrom(ctx, cfg).Logout(ctx); err != nil {
		// локальная сессия уже сброшена
		fmt.Fprintf(Out, "Logged out locally (server: %v)\n", err)
		return nil
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Показать, признаёт ли сервер сессию админа" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c := clientFrom(ctx, cfg)
	admin, err := c.Status(ctx)
	if err != nil {
		return explain(err)
	}
	local := "no"
	if c.Session.IsAdmin() {
		local = "yes"
	}
	server := "no"
	if admin {
		server = "yes"
	}
	fmt.Fprintf(Out, "Server: %s\nAdmin: %s (stored session: %s)\n", cfg.ServerURL, server, local)
	return nil
}

type passwdCmd struct{}

func (passwdCmd) Name() string        { return "passwd" }
func (passwdCmd) Description() string { return "Сменить пароль админа" }
func (passwdCmd) Usage() string       { return "passwd <old> <new>" }

func (passwdCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 || args[1] == "" {
		return ErrUsage
	}
	if err := clientFrom(ctx, cfg).ChangePassword(ctx, args[0], args[1]); err != nil {
		return explain(err)
	}
	fmt.Fprintln(Out, "Password changed")
	return nil
}

func init() {
	register(SectionSession, loginCmd{}, logoutCmd{}, statusCmd{})
	register(SectionAdmin, passwdCmd{})
}
