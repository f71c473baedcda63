package main

import (
	"lockin_backend/internal/app"

	"github.com/rs/zerolog/log"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatal().Err(err).Msg("app stopped with error")
	}
}
