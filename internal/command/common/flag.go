package common

import (
	"net/url"
	"time"

	"github.com/bornholm/recordbox/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramServer  = "server"
	paramTimeout = "timeout"
)

var (
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3001",
		EnvVars: []string{"RECORDBOX_CLI_SERVER"},
		Usage:   "Recordbox server base url",
	})
	flagTimeout = altsrc.NewDurationFlag(&cli.DurationFlag{
		Name:    paramTimeout,
		Value:   30 * time.Second,
		EnvVars: []string{"RECORDBOX_CLI_TIMEOUT"},
		Usage:   "Maximum duration of each api call",
	})
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
		flagTimeout,
	}, flags...)
}

// LoadConfig fills the command flags from the yaml file given with the
// global --config flag.
func LoadConfig(flags []cli.Flag) cli.BeforeFunc {
	return altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config"))
}

func GetRecordboxClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse server url '%s'", rawServerURL)
	}

	return client.New(
		client.WithBaseURL(serverURL),
		client.WithTimeout(ctx.Duration(paramTimeout)),
	), nil
}
