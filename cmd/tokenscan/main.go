package main

import (
	"context"
	"flag"

	"tokenscan/internal/config"
	"tokenscan/internal/extractor"
	"tokenscan/internal/fetch"
	"tokenscan/internal/ranker"
	"tokenscan/internal/storage"
	"tokenscan/pkg/logger"
)

func main() {
	var (
		source string
		limit  int
		out    string
		render bool
	)

	flag.StringVar(&source, "source", extractor.DefaultListingURL, "URL or local .html file supplying the listing page")
	flag.StringVar(&source, "s", extractor.DefaultListingURL, "shorthand for -source")
	flag.IntVar(&limit, "limit", 1000, "maximum number of records in the output")
	flag.IntVar(&limit, "n", 1000, "shorthand for -limit")
	flag.StringVar(&out, "out", "tokens.json", "destination path for the JSON output")
	flag.StringVar(&out, "o", "tokens.json", "shorthand for -out")
	flag.BoolVar(&render, "render", false, "fetch through headless Chrome instead of plain HTTP")
	flag.Parse()

	logger.Init(logger.IsDev())
	log := logger.Log

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	loader := &fetch.Loader{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.FetchTimeout,
		Policy:    fetch.NewHostPolicy(cfg.UserAgent, cfg.RateLimit, cfg.RespectRobots),
	}
	if render {
		loader.Renderer = &fetch.Renderer{
			UserAgent:     cfg.UserAgent,
			PageLoadDelay: cfg.PageLoadDelay,
			Timeout:       cfg.FetchTimeout,
		}
	}

	ctx := context.Background()

	html, err := loader.Load(ctx, source)
	if err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("failed to load source")
	}

	raw, err := extractor.Extract(html, source)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse listing page")
	}

	tokens := ranker.Rank(raw, limit)

	sink := storage.JSONSink{Path: out}
	if err := sink.Save(tokens); err != nil {
		log.Fatal().Err(err).Msg("failed to write output")
	}

	log.Info().Int("count", len(tokens)).Str("out", out).Msg("saved token records")
	for _, t := range tokens[:min(3, len(tokens))] {
		log.Info().Str("name", t.Name).Float64("price_usd", t.PriceUSD).Str("url", t.URL).Msg("sample")
	}
}
