package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/timber/internal/audio"
	"github.com/vovakirdan/timber/internal/config"
	"github.com/vovakirdan/timber/internal/core"
	"github.com/vovakirdan/timber/internal/games/timber"
	"github.com/vovakirdan/timber/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.Load()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.DefaultConfig()
	cfg.FrameTime = gameCfg.FrameTime()
	cfg.Seed = seed

	// Get terminal size for the first frame
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	var player audio.Player = audio.Silent{}
	if !flagMute {
		spk, err := audio.OpenDefault()
		if err != nil {
			return fmt.Errorf("failed to initialize audio: %w", err)
		}
		defer spk.Close()
		player = spk
		logger.Info("audio ready", "rate", audio.SampleRate)
	}

	game := timber.New(gameCfg, rand.New(rand.NewSource(seed)))
	if err := tui.Run(game, player, logger, cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
