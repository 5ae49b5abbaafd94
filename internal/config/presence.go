// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/MKhiriev/progphil-bot/internal/configurator"
)

// PresenceTextSuffix is appended to the presence key to find the activity
// text, e.g. DISCORD_ACTIVITY=watching and DISCORD_ACTIVITY_TEXT=the forums.
const PresenceTextSuffix = "_TEXT"

var activityTypes = map[string]discordgo.ActivityType{
	"playing":   discordgo.ActivityTypeGame,
	"streaming": discordgo.ActivityTypeStreaming,
	"listening": discordgo.ActivityTypeListening,
	"watching":  discordgo.ActivityTypeWatching,
	"custom":    discordgo.ActivityTypeCustom,
	"competing": discordgo.ActivityTypeCompeting,
}

// Presence is the activity the bot shows on Discord.
type Presence struct {
	Type discordgo.ActivityType
	Text string
}

// IsZero reports whether no presence was configured.
func (p Presence) IsZero() bool {
	return p.Text == ""
}

func (p Presence) String() string {
	for name, t := range activityTypes {
		if t == p.Type {
			return name + " " + p.Text
		}
	}

	return p.Text
}

// Activity converts the presence into the activity sent to the gateway.
func (p Presence) Activity() *discordgo.Activity {
	activity := &discordgo.Activity{
		Name: p.Text,
		Type: p.Type,
	}
	if p.Type == discordgo.ActivityTypeCustom {
		activity.State = p.Text
	}

	return activity
}

// PresenceAdapter converts an activity type name and the text stored under
// key+[PresenceTextSuffix] into a Presence.
func PresenceAdapter(key, value string, resolver configurator.Resolver) (Presence, error) {
	activityType, ok := activityTypes[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return Presence{}, fmt.Errorf("%w: %q", ErrUnknownActivityType, value)
	}

	textKey := key + PresenceTextSuffix
	text, ok := resolver.Get(textKey)
	if !ok || text == "" {
		return Presence{}, fmt.Errorf("%w: %s", ErrMissingActivityText, textKey)
	}

	return Presence{Type: activityType, Text: text}, nil
}
