package main

import (
	"flag"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/xgzlucario/keybench/internal/bench"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", defaultConfigFileName, "path of the config file.")
	flag.Parse()

	if err := initConfig(configFile); err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Msgf("read config %s error: %v", configFile, err)
	}

	logger, err := newLogger(os.Stdout)
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Msgf("init logger error: %v", err)
	}

	collector := &bench.Collector{}
	runner := bench.NewRunner(Iterations, bench.DefaultClock(), bench.Tee{bench.DefaultSink(logger), collector})

	logger.Debug().Msgf("running with %s identifiers, %s iterations per trial",
		humanize.Comma(DataSize), humanize.Comma(Iterations))

	if _, err := runSuite(runner, DataSize); err != nil {
		logger.Fatal().Msgf("generate dataset error: %v", err)
	}

	logRanking(logger, collector.Ranked())
}

// logRanking logs trials fastest first with their throughput. One op of a
// build+lookup trial inserts and then looks up a single entry.
func logRanking(logger zerolog.Logger, ranked []bench.Result) {
	for i, r := range ranked {
		unit := "ops/s"
		if strings.HasSuffix(r.Name, lookupOnly) {
			unit = "lookups/s"
		}
		entries := float64(r.Iterations) * DataSize
		rate := "n/a"
		if r.Elapsed > 0 {
			rate = humanize.SIWithDigits(entries/r.Elapsed, 2, unit)
		}
		logger.Debug().Msgf("#%d %s: %s", i+1, r.Name, rate)
	}
}
