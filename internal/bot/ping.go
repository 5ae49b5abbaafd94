package bot

import "github.com/bwmarrin/discordgo"

// Ping answers "PONG!" to show the bot is alive. Only the caller sees it.
type Ping struct{}

func (Ping) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Pings the bot to see whether it's still alive or not.",
	}
}

func (Ping) Handle(_ *discordgo.Interaction) (*discordgo.InteractionResponse, error) {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "PONG!",
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}, nil
}
