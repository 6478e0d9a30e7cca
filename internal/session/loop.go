package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/noted/internal/configs"
	logger "github.com/PolarWolf314/noted/internal/logging"
	"github.com/PolarWolf314/noted/internal/ui"
	"github.com/PolarWolf314/noted/internal/utils"
	"github.com/PolarWolf314/noted/internal/workflows"
)

// MenuTitle heads the menu.
const MenuTitle = "==== Encrypted Notes App ===="

// Options configures a Loop.
type Options struct {
	// In is read one line per prompt. Defaults to os.Stdin.
	In io.Reader
	// Out receives the menu and messages. Defaults to os.Stdout.
	Out io.Writer
	// Terminal, when attached to a terminal, is used to read passwords
	// without echo. Otherwise passwords are read from In like any other line.
	Terminal *os.File
	// Logger receives diagnostics the menu does not show.
	Logger logger.Logger
	// Banner is printed once at start when not empty.
	Banner string
}

// Loop is one interactive session.
type Loop struct {
	env      *workflows.Env
	in       *bufio.Reader
	out      io.Writer
	terminal *os.File
	log      logger.Logger
	banner   string

	isTerminal func(*os.File) bool
}

// New returns a Loop over env.
func New(env *workflows.Env, opts Options) *Loop {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Loop{
		env:      env,
		in:       bufio.NewReader(in),
		out:      out,
		terminal: opts.Terminal,
		log:      opts.Logger,
		banner:   opts.Banner,

		isTerminal: utils.IsTerminal,
	}
}

// Run creates the data directories, asks for an initial password on first
// use and then serves the menu until Exit or end of input.
func (l *Loop) Run(ctx context.Context) error {
	if err := configs.EnsureDirectories(l.env.Settings); err != nil {
		return err
	}
	l.log.Debugf("Session %s started in %s", l.env.Session.ID(), l.env.Settings.DataDir)

	if l.banner != "" {
		l.println(ui.Banner(l.banner))
	}

	if !l.env.Credentials.IsSet() {
		if err := l.setup(ctx); err != nil {
			return endOfInput(err)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.printMenu()
		choice, err := l.readLine()
		if err != nil {
			return endOfInput(err)
		}

		cmd, err := ParseCommand(choice)
		if err != nil {
			l.log.Debugf("Menu choice %q: %v", choice, err)
			l.println(ui.Error.Sprint("Invalid option!"))
			continue
		}
		if cmd == CommandExit {
			l.println("Exiting...")
			return nil
		}

		l.log.Debugf("Running %s", cmd)
		if err := dispatch[cmd](ctx, l); err != nil {
			return endOfInput(err)
		}
	}
}

func (l *Loop) setup(ctx context.Context) error {
	password, err := l.readPassword("Set a password for the app: ")
	if err != nil {
		return err
	}
	if _, err := workflows.Setup(ctx, l.env, workflows.SetupOptions{Password: password}); err != nil {
		if isContextErr(err) {
			return err
		}
		l.log.Debugf("Saving password: %v", err)
		l.println(ui.Error.Sprint("Error saving password."))
		return nil
	}
	l.println(ui.Success.Sprint("Password set successfully!"))
	return nil
}

func (l *Loop) printMenu() {
	l.println("")
	l.println(ui.Heading.Sprint(MenuTitle))
	for _, cmd := range Commands {
		l.println(fmt.Sprintf("%d. %s", int(cmd), cmd))
	}
	l.print(ui.Prompt.Sprint("Choose an option: "))
}

// prompt prints question and reads the answer.
func (l *Loop) prompt(question string) (string, error) {
	l.print(ui.Prompt.Sprint(question))
	return l.readLine()
}

// readPassword reads a password, hiding it when the terminal allows. Input
// already buffered from an earlier prompt is consumed first so typed-ahead
// lines keep their order.
func (l *Loop) readPassword(question string) (string, error) {
	if l.in.Buffered() == 0 && l.isTerminal(l.terminal) {
		return utils.ReadPassphrase(l.terminal, l.out, ui.Prompt.Sprint(question))
	}
	return l.prompt(question)
}

// readLine returns the next input line without its line ending. A final
// line without a newline is returned before io.EOF.
func (l *Loop) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return utils.TrimLineEnding(line), nil
		}
		return "", err
	}
	return utils.TrimLineEnding(line), nil
}

func (l *Loop) print(s string) {
	fmt.Fprint(l.out, s)
}

func (l *Loop) println(s string) {
	fmt.Fprintln(l.out, s)
}

// endOfInput turns io.EOF into a clean stop.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
