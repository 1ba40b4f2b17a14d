package cmd

import (
	"github.com/purl-cli/purl/app"
	"github.com/purl-cli/purl/internal/request"
	"github.com/urfave/cli/v2"
)

// runRequest hands a validated descriptor to the application pipeline.
func runRequest(ctx *cli.Context, desc *request.Descriptor) error {
	a, err := app.New(ctx)
	if err != nil {
		return err
	}

	return a.Run(ctx.Context, desc)
}
