package main

import (
	"fmt"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/MKhiriev/progphil-bot/internal/bot"
	"github.com/MKhiriev/progphil-bot/internal/config"
	"github.com/MKhiriev/progphil-bot/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootstrap, err := config.GetBootstrap(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting bootstrap options: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewLogger("progphil-bot")
	if bootstrap.Debug {
		log = logger.NewConsoleLogger("progphil-bot")
	}

	cfg, err := config.Load(bootstrap, log)
	if err != nil {
		log.Fatal().Err(err).Str("source", bootstrap.EnvFile).Msg("error getting configs")
	}
	cfg.Build = config.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}

	if !bootstrap.Debug {
		logger.SetLevel(cfg.LogLevel)
	}
	log = &logger.Logger{Logger: log.With().Str("instance", cfg.InstanceID.String()).Logger()}

	log.Info().
		Str("discordgo_version", discordgo.VERSION).
		Str("discord_api", discordgo.APIVersion).
		Int("shards", cfg.DiscordShards).
		Msg("ProgPhil Bot starting")
	log.Debug().Object("config", cfg).Msg("received configs")

	b, err := bot.NewBot(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating bot")
	}

	if err := b.Run(); err != nil {
		log.Fatal().Err(err).Msg("error running bot")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
