package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"GiftKiosk/internal/config"
)

// ErrUsage — команда получила не те аргументы; диспетчер печатает её Usage.
var ErrUsage = errors.New("usage")

// Command — подкоманда giftkiosk. Run получает аргументы без имени команды.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// Section — раздел справки.
type Section int

const (
	SectionKiosk Section = iota
	SectionSession
	SectionAdmin
	SectionOther
)

var sectionTitles = map[Section]string{
	SectionKiosk:   "Kiosk:",
	SectionSession: "Admin session:",
	SectionAdmin:   "Admin (after login):",
	SectionOther:   "Other:",
}

type entry struct {
	cmd     Command
	section Section
}

var registry = map[string]entry{}

// Out и In — вывод и ввод CLI, тесты их подменяют.
var (
	Out io.Writer = os.Stdout
	In  io.Reader = os.Stdin
)

// RegisterCmd регистрирует команду вне разделов.
func RegisterCmd(cmd Command) {
	register(SectionOther, cmd)
}

func register(section Section, cmds ...Command) {
	for _, c := range cmds {
		registry[c.Name()] = entry{cmd: c, section: section}
	}
}

func Get(name string) (Command, bool) {
	e, ok := registry[name]
	return e.cmd, ok
}

// List — команды по разделам, внутри раздела по имени.
func List() []Command {
	entries := make([]entry, 0, len(registry))
	for _, e := range registry {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if a.section != b.section {
			return int(a.section) - int(b.section)
		}
		return strings.Compare(a.cmd.Name(), b.cmd.Name())
	})
	out := make([]Command, len(entries))
	for i, e := range entries {
		out[i] = e.cmd
	}
	return out
}

// FormatGlobalUsage собирает общую справку. Колонка usage выравнивается по самой длинной.
func FormatGlobalUsage() string {
	cmds := List()
	width := 0
	for _, c := range cmds {
		width = max(width, len(c.Usage()))
	}

	var b strings.Builder
	b.WriteString("GiftKiosk CLI\n\n")
	b.WriteString("Usage:\n  giftkiosk [--base-url <host:port>] [--session-dir <dir>] <command> [args]\n")
	current := Section(-1)
	for _, c := range cmds {
		if s := registry[c.Name()].section; s != current {
			current = s
			fmt.Fprintf(&b, "\n%s\n", sectionTitles[s])
		}
		fmt.Fprintf(&b, "  %-*s  %s\n", width, c.Usage(), c.Description())
	}
	return b.String()
}

// commandHelp — справка по одной команде для "help <command>".
func commandHelp(c Command) string {
	return fmt.Sprintf("Usage: %s\n  %s\n", c.Usage(), c.Description())
}
