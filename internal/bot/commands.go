// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Commands keeps the served commands by name, in registration order.
type Commands struct {
	byName map[string]Command
	order  []Command
}

// NewCommands registers commands. Names must be unique.
func NewCommands(commands ...Command) (*Commands, error) {
	c := &Commands{
		byName: make(map[string]Command, len(commands)),
		order:  make([]Command, 0, len(commands)),
	}

	for _, command := range commands {
		name := command.Definition().Name
		if _, ok := c.byName[name]; ok {
			return nil, fmt.Errorf("%w: %s", errDuplicateCommand, name)
		}

		c.byName[name] = command
		c.order = append(c.order, command)
	}

	return c, nil
}

// Get returns the command registered under name.
func (c *Commands) Get(name string) (Command, bool) {
	command, ok := c.byName[name]
	return command, ok
}

// Definitions returns the definitions to synchronize with Discord.
func (c *Commands) Definitions() []*discordgo.ApplicationCommand {
	definitions := make([]*discordgo.ApplicationCommand, 0, len(c.order))
	for _, command := range c.order {
		definitions = append(definitions, command.Definition())
	}

	return definitions
}

// Respond builds the response of the command addressed by interaction.
func (c *Commands) Respond(interaction *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	name := interaction.ApplicationCommandData().Name

	command, ok := c.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownCommand, name)
	}

	response, err := command.Handle(interaction)
	if err != nil {
		return nil, fmt.Errorf("error handling command %s: %w", name, err)
	}
	if response == nil {
		return nil, fmt.Errorf("%w: %s", errUnexpectedResponse, name)
	}

	return response, nil
}
