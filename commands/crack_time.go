package commands

import (
	"errors"
	"fmt"

	"github.com/osec-tools/pass-meter/cracktime"
)

type CrackTimeCommand struct {
	Password string  `short:"p" long:"password" description:"the password to estimate" value-name:"PASSWORD"`
	Rate     float64 `long:"rate" description:"guesses per second the attacker can make"`
	Charset  float64 `long:"charset" description:"size of the assumed character set"`
	Seconds  bool    `long:"seconds" description:"also print the raw number of seconds"`
}

func (command *CrackTimeCommand) Execute(args []string) error {
	if command.Password == "" {
		return errors.New("--password must be specified")
	}

	result := cracktime.Estimate(command.Password, &cracktime.Options{
		GuessesPerSecond:   command.Rate,
		PossibleCharacters: command.Charset,
	})

	fmt.Println("Crack time:", result.Description)
	if command.Seconds {
		fmt.Printf("Seconds:    %g\n", result.Seconds)
	}

	return nil
}
