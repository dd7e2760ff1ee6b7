package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/shivani7798/JobSpy/internal/config"
	"github.com/shivani7798/JobSpy/internal/report"
	"github.com/shivani7798/JobSpy/internal/reporter"
	"github.com/shivani7798/JobSpy/internal/search"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config")
	resultsFile := flag.String("results", "", "override the results_file from config")
	flag.Parse()

	//load config
	cfg := config.Load(*configPath)
	if *resultsFile != "" {
		cfg.ResultsFile = *resultsFile
	}

	//optional telegram reporter
	var tg *reporter.TelegramReporter
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		var err error
		tg, err = reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram reporter: %v", err)
		}
		log.Println("🤖 Telegram reporter initialized.")
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Printf("🔍 Searching for %s jobs in %s...", cfg.Search.SearchTerm, cfg.Search.Location)
	log.Printf("📊 Results per site: %d", cfg.Search.ResultsWanted)

	//run the search through the provider; provider errors are upstream
	//failures and propagate as-is
	provider := search.NewFileProvider(cfg.ResultsFile)
	jobs, err := provider.Search(ctx, cfg.Search)
	if err != nil {
		if tg != nil {
			_ = tg.SendError(err)
		}
		log.Fatalf("❌ Search failed (%s): %v", provider.Name(), err)
	}
	log.Printf("Found %d jobs", len(jobs))

	//generate the report artifacts
	artifacts, err := report.Generate(jobs, report.Options{
		OutputDir: cfg.Output.Dir,
		BaseName:  cfg.Output.BaseName,
		Title:     cfg.Output.Title,
		Formats:   cfg.Formats(),
		Style:     cfg.StyleSpec(),
	})
	if err != nil {
		if tg != nil {
			_ = tg.SendError(err)
		}
		log.Fatalf("❌ Report generation failed: %v", err)
	}

	log.Println("✅ Report files created successfully!")
	for _, a := range artifacts {
		log.Printf("📁 File: %s", a.Path)
	}

	log.Println("📊 Sheets created:")
	log.Println("   - Summary (statistics)")
	log.Printf("   - All Jobs (%d jobs)", len(jobs))
	for _, part := range report.PartitionBySite(jobs) {
		log.Printf("   - %s (%d jobs)", report.SheetName(part.Site), len(part.Listings))
	}

	//send run summary to telegram
	if tg != nil {
		if err := tg.SendRunSummary(report.Summarize(jobs), artifacts); err != nil {
			log.Printf("⚠️ Failed to send Telegram summary: %v", err)
		}
	}

	log.Println("🏁 Execution finished.")
}
