package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/data"
	"github.com/Zachkp/folio/internal/handlers"
	"github.com/Zachkp/folio/internal/logging"
	"github.com/Zachkp/folio/internal/store"
	"github.com/Zachkp/folio/internal/styling"
	"github.com/Zachkp/folio/internal/tokens"
	"github.com/Zachkp/folio/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	set, err := tokens.Load(cfg.TokensFile)
	if err != nil {
		return err
	}
	site, err := data.Site()
	if err != nil {
		return err
	}
	tmpl, err := web.Templates(web.Funcs())
	if err != nil {
		return err
	}
	renderer := web.NewRenderer(tmpl)

	db, err := store.Open(ctx, cfg.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	h := handlers.New(handlers.Deps{
		Config:   cfg,
		Logger:   logger,
		Store:    db,
		Mailer:   handlers.NewSMTPMailer(cfg.SMTP),
		Styles:   styling.New(set),
		Site:     site,
		Renderer: renderer,
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.TemplateDir != "" && !cfg.IsProduction() {
		reloader, err := web.NewReloader(cfg.TemplateDir, web.Funcs(), renderer, logger)
		if err != nil {
			return fmt.Errorf("watch templates: %w", err)
		}
		defer reloader.Close()
		if t, err := web.TemplatesFromDir(cfg.TemplateDir, web.Funcs()); err == nil {
			renderer.Swap(t)
		}
		g.Go(func() error { return reloader.Run(ctx) })
		logger.Info("live template reload enabled", zap.String("dir", cfg.TemplateDir))
	}

	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			if _, err := db.Cleanup(ctx, store.Retention); err != nil {
				logger.Warn("privacy cleanup failed", zap.Error(err))
			}
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	})

	return g.Wait()
}
