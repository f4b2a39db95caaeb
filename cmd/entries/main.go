package main

import (
	"entrycheck/internal/entries/handler"
	"entrycheck/internal/entries/service"
	"entrycheck/internal/entries/validator"
	"entrycheck/pkg/app"
	"entrycheck/pkg/config"
	"entrycheck/pkg/sanitizer"
)

const ServiceName = "entries"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Entries service")
	parser := sanitizer.NewParserForVariant(cfg.Variant())
	entryService := initServices(cfg, parser)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg,
		handler.NewEntryHandler(entryService, cfg.Log),
		handler.NewHealthHandler(parser, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, parser *sanitizer.Parser) service.EntryService {
	entryValidator := validator.NewEntryValidator()
	entryService := service.NewEntryService(
		parser,
		entryValidator,
		cfg,
	)

	cfg.Log.Info("Entries service initialized", "variant", parser.Rules().Variant)
	return entryService
}
