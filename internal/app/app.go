package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mkorobeynikov/fintrack/internal/bot"
	"github.com/mkorobeynikov/fintrack/internal/config"
	"github.com/mkorobeynikov/fintrack/internal/handlers"
	"github.com/mkorobeynikov/fintrack/internal/pg"
	"github.com/mkorobeynikov/fintrack/internal/repo"
	"github.com/mkorobeynikov/fintrack/internal/service"
	"github.com/mkorobeynikov/fintrack/pkg/auth"
	"github.com/mkorobeynikov/fintrack/pkg/logger"
	"github.com/mkorobeynikov/fintrack/pkg/utils"
)

const maxPoolConns = 10

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	utils.SetVerboseErrors(!cfg.IsProduction())

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg, jwtService)
	a.api = handlers.New(a.srv, auth.AuthMiddleware(jwtService))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.srv.RateService.Start(ctx)
	a.srv.Auth.StartSweeper(ctx)

	if err := a.startTelegramBot(ctx); err != nil {
		return fmt.Errorf("can't start telegram bot: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	cfgpool.MaxConns = maxPoolConns
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startTelegramBot is a no-op without a token: the HTTP login flow
// works on its own, telegram is an optional second factor.
func (a *Application) startTelegramBot(ctx context.Context) error {
	if a.cfg.BotToken == "" {
		zap.L().Info("telegram bot token is empty, bot disabled")
		return nil
	}

	worker := bot.NewWorker(a.srv.Auth)
	tg, err := bot.NewTelegram(a.cfg.BotToken, worker.Events())
	if err != nil {
		return err
	}
	worker.SetNotifier(tg)
	worker.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		tg.Start(ctx)
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
