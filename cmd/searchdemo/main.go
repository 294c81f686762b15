// Command searchdemo is a minimal external driver over internal/searchcore:
// it wires config, logging, and metrics, loads a small fixed corpus, and
// runs a handful of demonstration queries, first one by one through the
// rolling request window and then as one batch fanned out across goroutines.
// It exposes no network surface of its own beyond the Prometheus scrape
// endpoint; spec.md's Non-goals exclude a query protocol/transport, so
// there is no server loop here to own one.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/radistMorze-constr/cpp-search-server/internal/metrics"
	"github.com/radistMorze-constr/cpp-search-server/internal/pagination"
	"github.com/radistMorze-constr/cpp-search-server/internal/requestlog"
	"github.com/radistMorze-constr/cpp-search-server/internal/searchcore"
	"github.com/radistMorze-constr/cpp-search-server/pkg/config"
	"github.com/radistMorze-constr/cpp-search-server/pkg/logger"
)

// defaultDemoStopWords seeds the engine when the loaded config leaves
// Search.StopWords unset, so the demo still has something to exercise
// stop-word filtering with.
const defaultDemoStopWords = "и в на"

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	metricsAddr := flag.String("metrics-addr", "", "address to serve /metrics on (empty disables it)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.WithComponent("searchdemo")

	collectors := metrics.New(prometheus.DefaultRegisterer)
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			log.Info("serving metrics", "addr", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
	}

	stopWords := cfg.Search.StopWords
	if stopWords == "" {
		stopWords = defaultDemoStopWords
	}
	engine, err := searchcore.NewFromText(stopWords,
		searchcore.WithLogger(log),
		searchcore.WithMetrics(collectors),
		searchcore.WithShardCount(cfg.Search.ShardCount),
		searchcore.WithTopK(cfg.Search.TopK),
	)
	if err != nil {
		log.Error("failed to construct engine", "error", err)
		os.Exit(1)
	}

	seedCorpus(engine, log)

	window := requestlog.New(collectors)
	for _, q := range []string{"пушистый кот", "нелюдимый пёс", "попугай"} {
		docs, err := requestlog.AddFindRequest(window, q, engine.FindTopDocuments)
		if err != nil {
			log.Error("query failed", "query", q, "error", err)
			continue
		}
		log.Info("query result", "query", q, "hits", len(docs))
		for _, d := range docs {
			fmt.Println(d.String())
		}
	}
	log.Info("no-result requests in window", "count", window.GetNoResultRequests())

	if err := engine.RemoveDuplicates(func(msg string) { log.Info(msg) }); err != nil {
		log.Error("remove duplicates failed", "error", err)
	}

	joined, err := engine.ProcessQueriesJoined([]string{"кот", "пёс"})
	if err != nil {
		log.Error("batched query failed", "error", err)
		return
	}
	log.Info("batched query joined results", "count", len(joined))

	pager := pagination.New(joined, cfg.Search.DefaultPageSize)
	for i, page := range pager.Pages() {
		log.Info("joined results page", "page", i+1, "of", pager.Len(), "items", page.Len())
		for _, d := range page.Items() {
			fmt.Println(d.String())
		}
	}
}

func seedCorpus(e *searchcore.Engine, log *slog.Logger) {
	docs := []struct {
		id     int64
		text   string
		status searchcore.Status
		rating []int
	}{
		{1, "белый кот и модный ошейник", searchcore.StatusActual, []int{8}},
		{2, "пушистый кот пушистый хвост", searchcore.StatusActual, []int{7}},
		{3, "ухоженный пёс выразительные глаза", searchcore.StatusActual, []int{5}},
		{4, "пушистый кот пушистый хвост", searchcore.StatusActual, []int{7}},
	}
	for _, d := range docs {
		if err := e.AddDocument(d.id, d.text, d.status, d.rating); err != nil {
			log.Error("failed to seed document", "id", d.id, "error", err)
		}
	}
}
