package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/argontus/chesscore/internal/chess"
	"github.com/argontus/chesscore/internal/config"
)

func main() {
	// Setup logging
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.Development.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	if cfg.Development.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	color.NoColor = color.NoColor || !cfg.Game.Color

	// A FEN argument overrides the configured starting position.
	startFEN := cfg.Game.StartFEN
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--fen" {
		args = args[1:]
	}
	if len(args) > 0 {
		startFEN = strings.Join(args, " ")
	}

	engine := chess.NewEngine()
	if startFEN != "" {
		engine, err = chess.NewEngineFromFEN(startFEN)
		if err != nil {
			log.Fatal().Err(err).Str("fen", startFEN).Msg("Failed to import position")
		}
		log.Info().Str("fen", startFEN).Msg("Starting from imported position")
	}

	fmt.Print(renderBoard(engine.State().Board))
	printStatus(engine)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !handle(engine, line) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to read input")
	}
}

// handle runs one REPL command, returning false to exit.
func handle(engine *chess.Engine, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return false

	case "board":
		fmt.Print(renderBoard(engine.State().Board))

	case "fen":
		fmt.Println(engine.GetFEN())

	case "status":
		printStatus(engine)

	case "history":
		fmt.Println(engine.HistoryString())

	case "moves":
		if len(fields) != 2 {
			fmt.Println("usage: moves <square>")
			break
		}
		dests := engine.ValidMoves(fields[1])
		if len(dests) == 0 {
			fmt.Println("no legal moves")
			break
		}
		fmt.Println(strings.Join(dests, " "))

	case "undo":
		if !engine.Undo() {
			fmt.Println("nothing to undo")
			break
		}
		fmt.Print(renderBoard(engine.State().Board))
		printStatus(engine)

	default:
		playMove(engine, fields[0])
	}
	return true
}

// playMove executes a coordinate move such as "e2e4" or "e7e8q".
func playMove(engine *chess.Engine, input string) {
	if len(input) != 4 && len(input) != 5 {
		fmt.Printf("unrecognized command %q\n", input)
		return
	}
	promotion := chess.NoKind
	if len(input) == 5 {
		promotion = chess.ParsePromotion(input[4:])
		if promotion == chess.NoKind {
			fmt.Printf("unknown promotion %q\n", input[4:])
			return
		}
	}

	result, err := engine.MakeMove(input[:2], input[2:4], promotion)
	if err != nil {
		log.Debug().Err(err).Str("move", input).Msg("Move rejected")
		fmt.Printf("rejected: %v\n", err)
		return
	}

	fmt.Print(renderBoard(engine.State().Board))
	fmt.Printf("%s  %s\n", result.SAN, result.FEN)
	if result.GameOver {
		fmt.Printf("game over: %s %s\n", engine.GetStatus(), result.Result)
		return
	}
	printStatus(engine)
}
