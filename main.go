package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/merrydance/vendorrec/algorithm"
	"github.com/merrydance/vendorrec/batch"
	"github.com/merrydance/vendorrec/dataset"
	"github.com/merrydance/vendorrec/util"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	catalog, err := dataset.LoadVendorCatalog(config.VendorsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load vendor catalog")
	}

	history, err := dataset.LoadPreferenceIndex(config.OrdersFile, catalog)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load order history")
	}

	locations, err := dataset.LoadCustomerLocations(config.LocationsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load customer locations")
	}

	recommender := newRecommender(config)
	log.Info().
		Str("algorithm", recommender.Name()).
		Str("version", recommender.Version()).
		Int("workers", config.WorkerCount).
		Msg("recommender selected")

	runner := batch.NewRunner(catalog, history, recommender, algorithm.RecommendConfig{
		MinScore:      config.MinScore,
		TopScoreRatio: config.TopScoreRatio,
		MaxResults:    config.MaxResults,
	}, config.WorkerCount)

	recommendations, err := runner.Run(ctx, locations)
	if err != nil {
		log.Fatal().Err(err).Msg("recommendation run failed")
	}

	if err := dataset.WriteSubmission(config.SubmissionFile, recommendations); err != nil {
		log.Fatal().Err(err).Msg("cannot write submission")
	}

	log.Info().
		Str("file", config.SubmissionFile).
		Int("rows", len(recommendations)).
		Msg("submission saved")
}

// newRecommender 根据配置选择推荐算法，默认使用偏好推荐
func newRecommender(config util.Config) algorithm.VendorRecommender {
	switch config.Recommender {
	case "simple":
		return algorithm.NewSimpleRecommender()
	default:
		return algorithm.NewPreferenceRecommender()
	}
}
