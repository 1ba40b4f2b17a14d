package cmd

import (
	"github.com/purl-cli/purl/internal/request"
	"github.com/urfave/cli/v2"
)

var (
	postCmdDescription = `The post command issues a single POST request to the given URL.
The body is built from comma-delimited key=value pairs and sent
as a flat JSON object; values are always strings. A key given
more than once keeps its last value.`
	postCmd = &cli.Command{
		Name:        "post",
		Usage:       "Issue a POST request with a JSON body",
		Description: postCmdDescription,
		Action:      postAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Usage:    "the URL to request.",
				Aliases:  []string{"u"},
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    "body",
				Usage:   "body fields as key=value pairs, comma-delimited.",
				Aliases: []string{"b"},
			},
		},
	}
)

func postAction(ctx *cli.Context) error {
	desc, err := request.NewDescriptor(request.MethodPost, ctx.String("url"), ctx.StringSlice("body"))
	if err != nil {
		return err
	}

	return runRequest(ctx, desc)
}

func init() {
	rootApp.Commands = append(rootApp.Commands, postCmd)
}
