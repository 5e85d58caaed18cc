package alert

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/zenity"
	"github.com/qumopa/qumopa/core/errs"
)

const dialogTitle = "Error"

// Notifier shows a run-ending error to the user.
type Notifier interface {
	NotifyError(err error)
}

// Console writes errors to a terminal.
type Console struct {
	Logger *log.Logger
}

func NewConsole(w io.Writer) *Console {
	return &Console{Logger: log.NewWithOptions(w, log.Options{})}
}

func (c *Console) NotifyError(err error) {
	c.Logger.Error(err.Error())
}

// Dialog shows errors in a blocking modal dialog, for runs started without a
// terminal (e.g. from a file manager). The dialog only shows the error's user
// message. If no dialog can be shown the error goes to Fallback.
type Dialog struct {
	Fallback Notifier
	show     func(msg string) error
}

func NewDialog(fallback Notifier) *Dialog {
	return &Dialog{
		Fallback: fallback,
		show: func(msg string) error {
			return zenity.Error(msg, zenity.Title(dialogTitle), zenity.ErrorIcon)
		},
	}
}

func (d *Dialog) NotifyError(err error) {
	if showErr := d.show(errs.Message(err)); showErr != nil {
		log.Debugf("Unable to show error dialog: %v", showErr)
		if d.Fallback != nil {
			d.Fallback.NotifyError(err)
		}
	}
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Select returns a console notifier when stdin is a terminal and a dialog
// notifier otherwise.
func Select(stdin *os.File, stderr io.Writer) Notifier {
	console := NewConsole(stderr)
	if IsInteractive(stdin) {
		return console
	}
	return NewDialog(console)
}
