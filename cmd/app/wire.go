//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/kezhang/textsmith/internal/bootstrap"
	"github.com/kezhang/textsmith/internal/domain/generator"
	"github.com/kezhang/textsmith/internal/domain/history"
	"github.com/kezhang/textsmith/internal/domain/summarizer"
	"github.com/kezhang/textsmith/internal/infra/config"
	httpiface "github.com/kezhang/textsmith/internal/interface/http"
	"github.com/kezhang/textsmith/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideGeneratorConfig,
		provideSummarizerConfig,
		provideHistoryConfig,
		provideChain,
		provideSummaryStore,
		provideHistoryRepository,
		generator.NewService,
		summarizer.NewService,
		history.NewRecorder,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
