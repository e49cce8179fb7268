package contacts

import (
	"strconv"

	"github.com/bornholm/recordbox/internal/command/common"
	"github.com/bornholm/recordbox/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagName  = "name"
	flagPhone = "phone"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "contacts",
		Usage: "Manage contacts",
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
		Usage:  "List contacts ordered by id",
		Flags:  flags,
		Before: common.LoadConfig(flags),
		Action: func(cCtx *cli.Context) error {
			recordbox, err := common.GetRecordboxClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			contacts, err := recordbox.ListContacts(cCtx.Context)
			if err != nil {
				return errors.Wrap(err, "could not list contacts")
			}

			return common.WriteJSON(cCtx.App.Writer, contacts)
		},
	}
}

func addCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:     flagName,
			Aliases:  []string{"n"},
			Usage:    "Contact name",
			Required: true,
		},
		&cli.StringFlag{
			Name:     flagPhone,
			Aliases:  []string{"p"},
			Usage:    "Contact phone number",
			Required: true,
		},
	)

	return &cli.Command{
		Name:   "add",
		Usage:  "Create a new contact",
		Flags:  flags,
		Before: common.LoadConfig(flags),
		Action: func(cCtx *cli.Context) error {
			recordbox, err := common.GetRecordboxClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			contact, err := recordbox.CreateContact(cCtx.Context, cCtx.String(flagName), cCtx.String(flagPhone))
			if client.IsBadRequest(err) {
				return errors.Wrap(err, "contact rejected by server")
			}

			if err != nil {
				return errors.Wrap(err, "could not create contact")
			}

			return common.WriteJSON(cCtx.App.Writer, contact)
		},
	}
}

func deleteCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a contact",
		ArgsUsage: "<id>",
		Flags:     flags,
		Before:    common.LoadConfig(flags),
		Action: func(cCtx *cli.Context) error {
			rawID := cCtx.Args().First()
			if rawID == "" {
				return errors.New("missing contact id")
			}

			id, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid contact id '%s'", rawID)
			}

			recordbox, err := common.GetRecordboxClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			message, err := recordbox.DeleteContact(cCtx.Context, id)
			if err != nil {
				return errors.Wrapf(err, "could not delete contact '%d'", id)
			}

			return common.WriteJSON(cCtx.App.Writer, message)
		},
	}
}
