package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/osec-tools/pass-meter/config"
	"github.com/osec-tools/pass-meter/cracktime"
	"github.com/osec-tools/pass-meter/mimetype"
	"github.com/osec-tools/pass-meter/scanners"
	"github.com/osec-tools/pass-meter/score"
	"github.com/osec-tools/pass-meter/strength"
)

type ScoreCommand struct {
	Password      string `short:"p" long:"password" description:"the password to score" value-name:"PASSWORD"`
	File          string `short:"f" long:"file" description:"score every non-empty line of FILE" value-name:"FILE"`
	ConfigFile    string `short:"c" long:"config" description:"path to a YAML policy file" value-name:"PATH"`
	ShowPasswords bool   `long:"show-passwords" description:"show passwords instead of masking them in batch output"`
	Debug         bool   `long:"debug" description:"enables debug logging"`
}

func (command *ScoreCommand) Execute(args []string) error {
	warnIfOldExecutable()

	logger := lager.NewLogger("score")

	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
	}

	cfg, err := loadPolicy(command.ConfigFile)
	if err != nil {
		return err
	}

	if command.Password != "" && command.File != "" {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Both --password and --file specified, only using: --file", command.File)
	}

	if command.File == "" && command.Password != "" {
		result := score.ComputeScore(command.Password, cfg.ScoreOptions())
		printResult(command.Password, result, cfg)

		if !result.Valid() {
			os.Exit(3)
		}

		return nil
	}

	weak, err := command.scoreBatch(logger, cfg)
	if err != nil {
		return err
	}

	if weak > 0 {
		os.Exit(3)
	}

	return nil
}

func printResult(candidate string, result score.Result, cfg *config.Config) {
	if !result.Valid() {
		for _, message := range result.Errors {
			fmt.Println(red("[FAIL]"), message)
		}

		return
	}

	tier, err := strength.Classify(result.Score, cfg.TierTable())
	if err != nil {
		fmt.Println(red("[FAIL]"), err.Error())
		return
	}

	estimate := cracktime.Estimate(candidate, cfg.CrackTimeOptions())

	fmt.Println("Score:      ", result.Score)
	fmt.Println("Strength:   ", colorForTier(tier)(tier.String()))
	fmt.Println("Crack time: ", estimate.Description)
}

func (command *ScoreCommand) scoreBatch(logger lager.Logger, cfg *config.Config) (int, error) {
	input := os.Stdin
	sourceName := "STDIN"

	if command.File != "" {
		if mime, isArchive := mimetype.IsArchive(command.File); isArchive {
			return 0, fmt.Errorf("refusing to score %s archive %q, expected a plain text list", mime, command.File)
		}

		fh, err := os.Open(command.File)
		if err != nil {
			return 0, err
		}
		defer fh.Close()

		input = fh
		sourceName = command.File
	}

	br := bufio.NewReader(input)

	if command.File != "" {
		prefix, _ := br.Peek(512)
		if mime, binary := mimetype.IsBinary(prefix); binary {
			return 0, fmt.Errorf("refusing to score binary file %q (%s), expected a plain text list", command.File, mime)
		}
	}

	meter := score.NewMeter(cfg.ScoreOptions())
	table := cfg.TierTable()

	weak := 0
	handler := func(logger lager.Logger, candidate scanners.Candidate, result score.Result) error {
		shown := candidate.Masked()
		if command.ShowPasswords {
			shown = candidate.Value
		}

		if !result.Valid() {
			weak++
			fmt.Printf("%s %s:%d %s %s\n", red("[FAIL]"), candidate.Source, candidate.LineNumber, shown, strings.Join(result.Errors, "; "))

			return nil
		}

		tier, err := strength.Classify(result.Score, table)
		if err != nil {
			return err
		}

		tag := colorForTier(tier)("[" + tier.String() + "]")
		fmt.Printf("%s %s:%d %s score=%d\n", tag, candidate.Source, candidate.LineNumber, shown, result.Score)

		return nil
	}

	err := meter.ScoreEach(logger, scanners.New(br, sourceName), handler)

	return weak, err
}
