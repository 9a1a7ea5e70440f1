// Command arcaded runs the arcade directory as a long-lived process.
//
// this binary:
//  1. loads config from environment variables (.env during dev)
//  2. builds the directory, ledger adapter and arcade service
//  3. optionally attaches the Discord announcer to the notice bus
//  4. waits for a signal from the OS to exit
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	disc "github.com/n8cade/arcade/internal/adapters/discord"
	"github.com/n8cade/arcade/internal/adapters/ledger"
	"github.com/n8cade/arcade/internal/app"
	"github.com/n8cade/arcade/internal/directory"
	"github.com/n8cade/arcade/pkg/config"
)

func main() {
	// load .env for local development
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(lvl)
	}

	dir := directory.New(cfg.Authority)
	mem := ledger.NewMemory()
	svc := app.NewService(dir, mem, log, cfg.JoinFee)

	// the arcade starts with a genesis game owned by the authority, so the
	// directory head is never dangling
	genesis, err := svc.CreateGame("genesis", "", "", cfg.Authority, cfg.Authority)
	if err != nil {
		log.Fatal().Err(err).Msg("genesis game error")
	}
	log.Info().Str("game", genesis).Msg("genesis game created")

	var announcer *disc.Announcer
	if cfg.AnnouncerEnabled() {
		sess, err := discordgo.New("Bot " + cfg.DiscordToken)
		if err != nil {
			log.Fatal().Err(err).Msg("discord session error")
		}
		if err := sess.Open(); err != nil {
			log.Fatal().Err(err).Msg("open gateway error")
		}
		defer sess.Close()

		announcer = disc.NewAnnouncer(sess, cfg.AnnounceChannelID, log)
		announcer.Start()
		defer announcer.Stop()
	}

	log.Info().Str("config", cfg.Redacted()).Msg("arcade ready")

	// block the process until SIGINT/SIGTERM for a clean shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
}
