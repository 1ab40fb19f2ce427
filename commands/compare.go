package commands

import (
	"errors"
	"fmt"

	"github.com/osec-tools/pass-meter/score"
)

type CompareCommand struct {
	Old        string `long:"old" description:"the current password" value-name:"PASSWORD"`
	New        string `long:"new" description:"the replacement password" value-name:"PASSWORD"`
	ConfigFile string `short:"c" long:"config" description:"path to a YAML policy file" value-name:"PATH"`
}

func (command *CompareCommand) Execute(args []string) error {
	if command.Old == "" || command.New == "" {
		return errors.New("both --old and --new must be specified")
	}

	cfg, err := loadPolicy(command.ConfigFile)
	if err != nil {
		return err
	}

	comparison, err := score.ComparePasswords(command.Old, command.New, cfg.ScoreOptions())
	if err != nil {
		return err
	}

	verdict := green(fmt.Sprintf("+%.2f%%", comparison.Delta))
	if comparison.Delta < 0 {
		verdict = red(fmt.Sprintf("%.2f%%", comparison.Delta))
	}

	fmt.Println("Old score: ", comparison.OldScore)
	fmt.Println("New score: ", comparison.NewScore)
	fmt.Println("Change:    ", verdict)
	fmt.Printf("Ratio:      %.2f\n", comparison.Ratio)

	return nil
}
