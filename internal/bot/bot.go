// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bot

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/MKhiriev/progphil-bot/internal/config"
	"github.com/MKhiriev/progphil-bot/internal/logger"
)

const syncShard = 0

type bot struct {
	cfg      *config.Configuration
	sessions []*discordgo.Session
	commands *Commands
	logger   *logger.Logger
}

// NewBot prepares one session per shard of cfg. No connection is made until
// [Bot.Run].
func NewBot(cfg *config.Configuration, log *logger.Logger) (Bot, error) {
	if cfg.DiscordToken == "" {
		return nil, errMissingToken
	}
	if cfg.DiscordShards < 1 {
		return nil, errNoShards
	}

	commands, err := NewCommands(Ping{})
	if err != nil {
		return nil, err
	}

	b := &bot{
		cfg:      cfg,
		sessions: make([]*discordgo.Session, 0, cfg.DiscordShards),
		commands: commands,
		logger:   log,
	}

	bridgeLogs(log.GetChildLogger("discordgo"))

	for shard := range cfg.DiscordShards {
		session, err := newSession(cfg, shard)
		if err != nil {
			return nil, fmt.Errorf("error creating session for shard %d: %w", shard, err)
		}

		session.AddHandler(b.onReady)
		session.AddHandler(b.onInteraction)
		b.sessions = append(b.sessions, session)
	}

	return b, nil
}

func newSession(cfg *config.Configuration, shard int) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}

	session.ShardID = shard
	session.ShardCount = cfg.DiscordShards
	session.Identify.Intents = discordgo.IntentsGuilds
	session.ShouldReconnectOnError = true
	session.LogLevel = discordLogLevel(cfg.LogLevel)
	session.Client.Timeout = cfg.RequestTimeout
	session.State.MaxMessageCount = cfg.MessageCacheSize

	return session, nil
}

func (b *bot) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	for _, session := range b.sessions {
		if err := session.Open(); err != nil {
			b.Shutdown()
			return fmt.Errorf("error logging in shard %d: %w", session.ShardID, err)
		}
		b.logger.Info().Int("shard", session.ShardID).Msg("logged in on shard")
	}

	<-ctx.Done()

	b.Shutdown()
	b.logger.Info().Msg("bot shut down gracefully")

	return nil
}

func (b *bot) Shutdown() {
	for _, session := range b.sessions {
		if err := session.Close(); err != nil {
			b.logger.Warn().Err(err).Int("shard", session.ShardID).Msg("error closing shard session")
		}
	}
}

func (b *bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if !b.cfg.Presence.IsZero() {
		err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
			Status:     string(discordgo.StatusOnline),
			Activities: []*discordgo.Activity{b.cfg.Presence.Activity()},
		})
		if err != nil {
			b.logger.Warn().Err(err).Int("shard", s.ShardID).Msg("error updating presence")
		}
	}

	if s.ShardID != syncShard {
		return
	}

	b.syncCommands(s, r.User.ID)
}

// syncCommands overwrites the global commands, then the commands of every
// development guild.
func (b *bot) syncCommands(s *discordgo.Session, applicationID string) {
	definitions := b.commands.Definitions()
	guilds := append([]string{""}, b.cfg.DevGuilds...)

	for _, guildID := range guilds {
		b.logger.Info().Int("commands", len(definitions)).Str("guild", guildID).Msg("synchronizing commands with Discord")

		if _, err := s.ApplicationCommandBulkOverwrite(applicationID, guildID, definitions); err != nil {
			b.logger.Error().Err(err).Str("guild", guildID).Msg("error synchronizing commands")
			continue
		}

		b.logger.Info().Int("commands", len(definitions)).Str("guild", guildID).Msg("commands synchronized")
	}
}

func (b *bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	response, err := b.commands.Respond(i.Interaction)
	if err != nil {
		b.logger.Error().Err(err).Int("shard", s.ShardID).Msg("error responding to command")
		return
	}

	if err := s.InteractionRespond(i.Interaction, response); err != nil {
		b.logger.Error().Err(err).Int("shard", s.ShardID).Msg("error sending command response")
	}
}
