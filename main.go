package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/colorworld-split/internal/compositor"
	"github.com/iburimskiy/colorworld-split/internal/config"
	"github.com/iburimskiy/colorworld-split/internal/demo"
	"github.com/iburimskiy/colorworld-split/internal/game"
	"github.com/iburimskiy/colorworld-split/internal/imagesrc"
	"github.com/iburimskiy/colorworld-split/internal/profile"
)

func main() {
	// ---- Flags (set flags win over config.yaml) ----
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		profileID  = flag.String("profile", config.DefaultProfile, "vision type: deuteranopia | protanopia | tritanopia")
		split      = flag.Float64("split", config.DefaultSplit, "initial split position in percent")
		particles  = flag.Bool("particles", false, "show the particle overlay")
		count      = flag.Int("particle-count", config.DefaultParticleCount, "number of particles")
		logLevel   = flag.String("log-level", "info", "debug | info | warn | error")
		imagePath  = flag.String("image", "", "image to open at start")
		useDemo    = flag.Bool("demo", false, "start with the demo landscape")
		export     = flag.String("export", "", "render one frame to this PNG and exit")
		size       = flag.String("size", "", "export size WxH (default: image size)")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// ---- Settings ----
	settings, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with defaults")
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "profile":
			settings.Profile = *profileID
		case "split":
			settings.Split = *split
		case "particles":
			settings.ShowParticles = *particles
		case "particle-count":
			settings.ParticleCount = *count
		case "log-level":
			settings.LogLevel = *logLevel
		case "image":
			settings.Image = *imagePath
		}
	})
	if err := validate(settings); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", settings.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	logger := log.Logger

	// ---- Initial image ----
	var initial image.Image
	switch {
	case *useDemo:
		initial, err = demo.Landscape()
	case settings.Image != "":
		initial, err = imagesrc.Open(settings.Image)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("load image")
	}

	if *export != "" {
		if err := exportFrame(*export, initial, settings, *size); err != nil {
			log.Fatal().Err(err).Str("path", *export).Msg("export failed")
		}
		log.Info().Str("path", *export).Msg("frame exported")
		return
	}

	// ---- Window ----
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("ColorWorld Split - drag the handle to compare, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(game.Options{Settings: settings, Logger: &logger, Initial: initial})
	defer g.Close()
	log.Info().Str("profile", settings.Profile).Float64("split", settings.Split).Msg("starting")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("run game")
		os.Exit(1)
	}
}

func validate(s config.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, ok := profile.Lookup(s.Profile); !ok {
		return fmt.Errorf("unknown profile %q", s.Profile)
	}
	return nil
}

func exportFrame(path string, img image.Image, s config.Settings, size string) error {
	if img == nil {
		return errors.New("export needs -image or -demo")
	}
	w, h, err := parseSize(size)
	if err != nil {
		return err
	}
	out, err := compositor.Render(img, s.Profile, s.Split, w, h)
	if err != nil {
		return err
	}
	return imagesrc.SavePNG(path, out)
}

// parseSize parses "WxH"; an empty string means 0x0.
func parseSize(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: dimensions must be positive", s)
	}
	return w, h, nil
}
