package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"slimecrawl/pkg/engine/terminal"
	"slimecrawl/pkg/engine/world"
	"slimecrawl/pkg/game/devtools"
	"slimecrawl/pkg/game/generator"
	"slimecrawl/pkg/game/level"
)

// summaryRows is the number of terminal rows kept free below the map
const summaryRows = 2

func initGettext() {
	gotext.Configure("locales", "en_GB", "default")
}

func initLogging(debug bool) {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}
}

func main() {
	width := flag.Int("width", 0, "map width in tiles (0 fits the terminal)")
	height := flag.Int("height", 0, "map height in tiles (0 fits the terminal)")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	genName := flag.String("generator", "bsp", "layout generator: bsp or linewalker")
	configPath := flag.String("config", "", "YAML level config file")
	useColor := flag.Bool("color", terminal.IsTerminal(), "colour the map output")
	dump := flag.Bool("dump", false, "also write a debug dump to map.txt")
	debug := flag.Bool("debug", false, "Whether to enable debug logging.")
	flag.Parse()

	initLogging(*debug)
	initGettext()

	cfg := level.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = level.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load level config")
		}
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	w, h := terminal.FitMapSize(*width, *height, summaryRows)
	log.Debug().Uint64("seed", *seed).Int("width", w).Int("height", h).Msg("building level")

	r := world.NewRand(*seed)
	gen, err := generator.New(*genName, r)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to select generator")
	}

	m, err := level.NewMap(w, h, gen,
		level.WithRand(r),
		level.WithConfig(cfg),
		level.WithLogger(log.Logger),
	)
	if err != nil {
		log.Fatal().Err(err).Int("width", w).Int("height", h).Msg("failed to build level")
	}

	if err := devtools.WriteMap(os.Stdout, m, devtools.DumpOptions{Color: *useColor}); err != nil {
		log.Fatal().Err(err).Msg("failed to write map")
	}
	log.Info().Uint64("seed", *seed).Msg(devtools.Summary(m))

	if *dump {
		path, err := devtools.DumpMapToFile(m, *seed)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to write map dump")
		}
		log.Info().Str("path", path).Msg("wrote map dump")
	}
}
