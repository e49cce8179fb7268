package colours

import (
	"github.com/bornholm/recordbox/internal/command/common"
	"github.com/bornholm/recordbox/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagName = "name"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:    "colours",
		Aliases: []string{"colors"},
		Usage:   "Manage colours",
		Subcommands: []*cli.Command{
			listCommand(),
			addCommand(),
			deleteCommand(),
		},
	}
}

func listCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:   "list",
		Usage:  "List colours",
		Flags:  flags,
		Before: common.LoadConfig(flags),
		Action: func(cCtx *cli.Context) error {
			recordbox, err := common.GetRecordboxClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			colours, err := recordbox.ListColours(cCtx.Context)
			if err != nil {
				return errors.Wrap(err, "could not list colours")
			}

			return common.WriteJSON(cCtx.App.Writer, colours)
		},
	}
}

func addCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:     flagName,
			Aliases:  []string{"n"},
			Usage:    "Colour name",
			Required: true,
		},
	)

	return &cli.Command{
		Name:   "add",
		Usage:  "Create a new colour",
		Flags:  flags,
		Before: common.LoadConfig(flags),
		Action: func(cCtx *cli.Context) error {
			recordbox, err := common.GetRecordboxClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			colour, err := recordbox.CreateColour(cCtx.Context, cCtx.String(flagName))
			if client.IsBadRequest(err) {
				return errors.Wrap(err, "colour rejected by server")
			}

			if err != nil {
				return errors.Wrap(err, "could not create colour")
			}

			return common.WriteJSON(cCtx.App.Writer, colour)
		},
	}
}

func deleteCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a colour",
		ArgsUsage: "<id>",
		Flags:     flags,
		Before:    common.LoadConfig(flags),
		Action: func(cCtx *cli.Context) error {
			id := cCtx.Args().First()
			if id == "" {
				return errors.New("missing colour id")
			}

			recordbox, err := common.GetRecordboxClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			message, err := recordbox.DeleteColour(cCtx.Context, id)
			if err != nil {
				return errors.Wrapf(err, "could not delete colour '%s'", id)
			}

			return common.WriteJSON(cCtx.App.Writer, message)
		},
	}
}
