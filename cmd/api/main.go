package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/andersonm2se/sku-validator-litoral/internal/application/painel"
	infrapdf "github.com/andersonm2se/sku-validator-litoral/internal/infrastructure/pdf"
	"github.com/andersonm2se/sku-validator-litoral/internal/infrastructure/validatorapi"
	httpRouter "github.com/andersonm2se/sku-validator-litoral/internal/interfaces/http"
	"github.com/andersonm2se/sku-validator-litoral/pkg/config"
	"github.com/andersonm2se/sku-validator-litoral/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("validador", cfg.Validador.BaseURL).
		Msg("iniciando aplicação")

	store := painel.NewStore(cfg.Painel.TamanhoPagina)
	cliente := validatorapi.NewClient(cfg.Validador.BaseURL)
	atualizarUC := painel.NewAtualizarUseCase(cliente, store, log, cfg.Validador.Timeout())

	pdfGenerator := infrapdf.NewMarotoRelatorioGenerator()
	painelUC := painel.NewPainelUseCase(store, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PainelUC:    painelUC,
		AtualizarUC: atualizarUC,
	})

	// Carga inicial em segundo plano: o servidor sobe e renderiza com o
	// store vazio enquanto a primeira busca não termina.
	go func() {
		if err := atualizarUC.Atualizar(context.Background()); err != nil {
			log.Warn().Err(err).Msg("carga inicial incompleta; painel segue com os dados disponíveis")
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
