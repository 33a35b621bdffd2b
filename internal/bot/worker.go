package bot

import (
	"context"
	"errors"
	"sync"

	"github.com/mkorobeynikov/fintrack/internal/service/authservice"
	"github.com/mkorobeynikov/fintrack/pkg/metrics"
	"go.uber.org/zap"
)

type EventKind int

const (
	// EventLink: the user opened the bot through a login deep-link and was
	// shown the confirm keyboard.
	EventLink EventKind = iota
	// EventConfirm: the user pressed confirm for a pending auth session.
	EventConfirm
	// EventDecline: the user rejected the login attempt.
	EventDecline
)

func (k EventKind) String() string {
	switch k {
	case EventLink:
		return "link"
	case EventConfirm:
		return "confirm"
	case EventDecline:
		return "decline"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind       EventKind
	TelegramID int64
	ChatID     int64
	Token      string
}

// Notifier sends a plain text reply back to the chat an event came from.
// The long-polling collaborator implements it.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string)
}

type AuthService interface {
	ConfirmTelegramSession(ctx context.Context, token string, telegramID int64) error
}

type Task func() error

// pool is a fixed-size task runner; events queue up when all workers are
// busy rather than spawning unbounded goroutines.
type pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

func newPool(size int) *pool {
	p := &pool{tasks: make(chan Task, size)}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

func (p *pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		if err := task(); err != nil {
			zap.L().Error("bot task execution failed", zap.Error(err))
		}
	}
}

func (p *pool) add(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.tasks <- task:
		return nil
	}
}

// stop lets workers drain queued tasks, then waits for them to exit.
func (p *pool) stop() {
	close(p.tasks)
	p.wg.Wait()
}

const defaultPoolSize = 4

// Worker consumes bot events from a channel and maps each kind to a pure
// handler over the auth service. It owns no network loop: the Telegram
// long-poll feeds the channel from outside.
type Worker struct {
	events      chan Event
	authService AuthService
	notifier    Notifier
	pool        *pool
}

func NewWorker(authService AuthService) *Worker {
	return &Worker{
		events:      make(chan Event, 64),
		authService: authService,
		pool:        newPool(defaultPoolSize),
	}
}

// SetNotifier wires the reply channel in after the collaborator is built;
// the collaborator itself needs Events() first.
func (w *Worker) SetNotifier(n Notifier) {
	w.notifier = n
}

// Events is the submission side handed to the collaborator.
func (w *Worker) Events() chan<- Event {
	return w.events
}

func (w *Worker) Start(ctx context.Context) {
	zap.L().Info("telegram auth worker started")
	go w.run(ctx)
}

func (w *Worker) run(ctx context.Context) {
	defer w.pool.stop()
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping telegram auth worker")
			return
		case ev := <-w.events:
			err := w.pool.add(ctx, func() error {
				return w.handle(ctx, ev)
			})
			if err != nil {
				return
			}
		}
	}
}

func (w *Worker) handle(ctx context.Context, ev Event) error {
	metrics.CountTelegramEvent(ev.Kind.String())
	switch ev.Kind {
	case EventLink:
		w.notifier.Notify(ctx, ev.ChatID, "Login request received. Confirm it below.")
		return nil
	case EventConfirm:
		return w.confirm(ctx, ev)
	case EventDecline:
		w.notifier.Notify(ctx, ev.ChatID, "Login declined.")
		return nil
	default:
		return nil
	}
}

func (w *Worker) confirm(ctx context.Context, ev Event) error {
	err := w.authService.ConfirmTelegramSession(ctx, ev.Token, ev.TelegramID)
	switch {
	case err == nil:
		w.notifier.Notify(ctx, ev.ChatID, "Login confirmed. Return to the app.")
		return nil
	case errors.Is(err, authservice.ErrSessionNotFound):
		w.notifier.Notify(ctx, ev.ChatID, "This login link has expired. Request a new one.")
		return nil
	case errors.Is(err, authservice.ErrUnknownTelegramID):
		w.notifier.Notify(ctx, ev.ChatID, "This Telegram account is not linked to any profile.")
		return nil
	default:
		w.notifier.Notify(ctx, ev.ChatID, "Something went wrong. Try again later.")
		return err
	}
}
