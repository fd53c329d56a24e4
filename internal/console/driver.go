package console

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
)

const (
	controlsHint = "[gray]arrows/hjkl move  enter play  n new match  q quit[-]"
	connectedMsg = "System: Connected to Bot Brain..."
	maxLogLines  = 500
)

type matchController interface {
	Start(ctx context.Context) (gomoku.Update, error)
	Click(ctx context.Context, index int) (gomoku.Update, error)
	Rematch(ctx context.Context) (gomoku.Update, error)
	Snapshot() (entity.Match, bool)
	OnMatchStarted(fn func(matchID string))
}

type logFeed interface {
	Subscribe(ctx context.Context, matchID string) <-chan string
}

// Driver is the terminal presentation: a board, a status panel and the bot log.
// Controller calls run off the UI loop and their results are queued back onto it.
type Driver struct {
	logger     *slog.Logger
	controller matchController
	feed       logFeed

	app     *tview.Application
	board   *BoardView
	status  *tview.TextView
	feedLog *tview.TextView

	queue func(fn func())

	feedMu      sync.Mutex
	feedMatchID string
	stopFeed    context.CancelFunc
}

// NewDriver - feed may be nil when no log feed is available.
func NewDriver(logger *slog.Logger, controller matchController, feed logFeed) *Driver {
	app := tview.NewApplication()

	status := tview.NewTextView().SetDynamicColors(true)
	status.SetBorder(true).SetTitle(" Match ")

	feedLog := tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetMaxLines(maxLogLines)
	feedLog.SetBorder(true).SetTitle(" Bot log ")

	return &Driver{
		logger:     logger.With("component", "console"),
		controller: controller,
		feed:       feed,
		app:        app,
		board:      NewBoardView(),
		status:     status,
		feedLog:    feedLog,
		queue:      func(fn func()) { app.QueueUpdateDraw(fn) },
		stopFeed:   func() {},
	}
}

// Run - shows the UI until q is pressed or ctx is cancelled.
func (that *Driver) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer that.stopFollowing()

	that.bind(ctx)

	that.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyRune {
			return event
		}

		switch event.Rune() {
		case 'q':
			that.app.Stop()
		case 'n':
			go that.rematch(ctx)
		default:
			return event
		}

		return nil
	})

	stop := context.AfterFunc(ctx, that.app.Stop)
	defer stop()

	go that.start(ctx)

	if err := that.app.SetRoot(that.layout(), true).SetFocus(that.board).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	return nil
}

// bind - connects board input and new match ids to ctx.
func (that *Driver) bind(ctx context.Context) {
	that.board.onPlay = func(index int) {
		go that.play(ctx, index)
	}

	that.controller.OnMatchStarted(func(matchID string) {
		that.follow(ctx, matchID)
	})
}

func (that *Driver) layout() tview.Primitive {
	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(that.status, 5, 0, false).
		AddItem(that.feedLog, 0, 1, false)

	return tview.NewFlex().
		AddItem(that.board, 0, 2, true).
		AddItem(side, 0, 1, false)
}

func (that *Driver) start(ctx context.Context) {
	update, err := that.controller.Start(ctx)
	that.show(update, err)
}

func (that *Driver) rematch(ctx context.Context) {
	update, err := that.controller.Rematch(ctx)
	that.show(update, err)
}

func (that *Driver) play(ctx context.Context, index int) {
	update, err := that.controller.Click(ctx, index)
	that.show(update, err)
}

func (that *Driver) show(update gomoku.Update, err error) {
	match, ok := that.controller.Snapshot()

	text := Status(update)
	if !ok {
		text = "no match yet"
	}

	if err != nil {
		that.logger.Debug("operation failed", "error", err)
		text += "\n" + describeError(err)
	}

	that.queue(func() {
		if ok {
			that.board.SetMatch(match)
		}

		that.status.SetText(tview.Escape(text) + "\n" + controlsHint)
	})
}

// follow - switches the log feed to matchID when it changed. It returns once the
// feed is subscribed so lines of the next request are not missed.
func (that *Driver) follow(ctx context.Context, matchID string) {
	if that.feed == nil || matchID == "" {
		return
	}

	that.feedMu.Lock()
	if matchID == that.feedMatchID {
		that.feedMu.Unlock()
		return
	}

	that.stopFeed()

	feedCtx, cancel := context.WithCancel(ctx)
	that.stopFeed = cancel
	that.feedMatchID = matchID
	that.feedMu.Unlock()

	lines := that.feed.Subscribe(feedCtx, matchID)
	that.appendLog(connectedMsg)

	go func() {
		for line := range lines {
			that.appendLog(line)
		}
	}()
}

func (that *Driver) stopFollowing() {
	that.feedMu.Lock()
	defer that.feedMu.Unlock()

	that.stopFeed()
}

func (that *Driver) appendLog(line string) {
	that.queue(func() {
		fmt.Fprintln(that.feedLog, formatLogLine(line))
		that.feedLog.ScrollToEnd()
	})
}
