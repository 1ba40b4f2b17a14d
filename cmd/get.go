package cmd

import (
	"github.com/purl-cli/purl/internal/request"
	"github.com/urfave/cli/v2"
)

var (
	getCmdDescription = `The get command issues a single GET request to the given URL and
prints the response status line, headers and body. Bodies with a
known content type are syntax highlighted.`
	getCmd = &cli.Command{
		Name:        "get",
		Usage:       "Issue a GET request",
		Description: getCmdDescription,
		Action:      getAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Usage:    "the URL to request.",
				Aliases:  []string{"u"},
				Required: true,
			},
		},
	}
)

func getAction(ctx *cli.Context) error {
	desc, err := request.NewDescriptor(request.MethodGet, ctx.String("url"), nil)
	if err != nil {
		return err
	}

	return runRequest(ctx, desc)
}

func init() {
	rootApp.Commands = append(rootApp.Commands, getCmd)
}
