// Package main wires the HTTP server for the query demo.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/als904204/go-querydsl/config"
	"github.com/als904204/go-querydsl/internal/repository"
	"github.com/als904204/go-querydsl/internal/transport/http/handlers"
	"github.com/als904204/go-querydsl/internal/transport/http/middleware"
	"github.com/als904204/go-querydsl/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	store, err := repository.Open(cfg.Database, log)
	if err != nil {
		log.Errorw("store initialization error", "error", err)
		return
	}
	defer func() {
		_ = store.Close()
	}()

	if err := store.Seed(); err != nil {
		log.Errorw("seed error", "error", err)
		return
	}

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	handlers.New(log, store).Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()
	log.Infow("server started", "addr", cfg.ServerAddr(), "driver", cfg.Database.Driver)

	<-ctx.Done()
	stop()

	if err := serv.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Errorw("shutdown error", "error", err)
	}
	log.Infow("server stopped")
}
