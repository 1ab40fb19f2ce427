package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/kardianos/osext"

	"github.com/osec-tools/pass-meter/config"
)

type PassMeterCommand struct {
	Score     ScoreCommand     `command:"score" description:"Score a password, a file of passwords, or input from STDIN"`
	Compare   CompareCommand   `command:"compare" description:"Compare the scores of an old and a new password"`
	CrackTime CrackTimeCommand `command:"crack-time" description:"Estimate the brute-force crack time of a password"`
	Update    UpdateCommand    `command:"update" description:"Update pass-meter to the latest version"`
	Version   VersionCommand   `command:"version" description:"Displays pass-meter version" alias:"V"`
}

var PassMeter PassMeterCommand

func loadPolicy(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		var result error
		for _, err := range errs {
			result = multierror.Append(result, err)
		}

		return nil, result
	}

	return cfg, nil
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := osext.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider running `pass-meter update`.")
	}
}
