// Package bot runs the Discord side of the application.
//
// It logs in one gateway session per configured shard, keeps the global slash
// commands in sync from shard 0 and answers command interactions. The bot is
// built from an already bound [config.Configuration]; it never reads
// configuration sources itself.
package bot
