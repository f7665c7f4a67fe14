package main

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal().Err(err).Msg("wordscramble exited")
	}
}
