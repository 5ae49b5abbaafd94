package bot

import "github.com/bwmarrin/discordgo"

// Bot defines the lifecycle of the sharded Discord runtime.
//
// Implementations are expected to block in [Run] until shutdown is requested
// and to release every gateway session in [Shutdown].
type Bot interface {
	// Run logs in every shard and blocks until SIGTERM, SIGINT or SIGQUIT.
	Run() error

	// Shutdown closes every open session.
	Shutdown()
}

// Command is a slash command served by the bot.
type Command interface {
	// Definition is the command as registered with Discord.
	Definition() *discordgo.ApplicationCommand

	// Handle builds the response to an invocation of the command.
	Handle(interaction *discordgo.Interaction) (*discordgo.InteractionResponse, error)
}
