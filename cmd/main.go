package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/csob/internal/api"
	"github.com/samandr77/microservices/csob/internal/clients/csob"
	"github.com/samandr77/microservices/csob/internal/service"
	"github.com/samandr77/microservices/csob/pkg/broker"
	"github.com/samandr77/microservices/csob/pkg/config"
	"github.com/samandr77/microservices/csob/pkg/job"
	"github.com/samandr77/microservices/csob/pkg/logger"
	"github.com/samandr77/microservices/csob/pkg/security"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 35 * time.Second
)

type producer interface {
	service.Producer
	Close()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	signer, err := security.NewSigner(cfg.Merchant.SignatureHash)
	panicOnErr("create signer", err)

	var p producer = broker.NopProducer{}
	if cfg.Kafka.Enabled {
		p = broker.NewProducer(slog.Default(), cfg.Kafka.Brokers, cfg.Kafka.PaymentSignedTopic)
	}
	defer p.Close()

	opts := []service.Option{}
	if cfg.Gateway.Enabled {
		opts = append(opts, service.WithGateway(csob.NewClient(cfg.Gateway)))
	}

	s := service.New(cfg.Merchant.Entity(), signer.SignString, p, opts...)

	err = s.CheckMerchantKey(ctx)
	panicOnErr("check merchant key", err)

	jobs := job.NewService().
		TryRegisterJob(cfg.Merchant.KeyCheckEnabled, "check merchant key", cfg.Merchant.KeyCheckInterval, s.CheckMerchantKey)
	jobs.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port, "merchant_id", cfg.Merchant.ID,
		"gateway_enabled", cfg.Gateway.Enabled, "kafka_enabled", cfg.Kafka.Enabled)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err := server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
