// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/progphil-bot/internal/logger"
)

// discordLogLevel maps a zerolog level onto the discordgo session levels.
func discordLogLevel(level zerolog.Level) int {
	switch {
	case level <= zerolog.DebugLevel:
		return discordgo.LogDebug
	case level == zerolog.InfoLevel:
		return discordgo.LogInformational
	case level == zerolog.WarnLevel:
		return discordgo.LogWarning
	default:
		return discordgo.LogError
	}
}

// bridgeLogs routes discordgo's internal messages into log.
// discordgo.Logger is process-wide.
func bridgeLogs(log *logger.Logger) {
	discordgo.Logger = func(msgL, _ int, format string, a ...interface{}) {
		var event *zerolog.Event
		switch msgL {
		case discordgo.LogError:
			event = log.Error()
		case discordgo.LogWarning:
			event = log.Warn()
		case discordgo.LogInformational:
			event = log.Info()
		default:
			event = log.Debug()
		}

		event.Msg(fmt.Sprintf(format, a...))
	}
}
