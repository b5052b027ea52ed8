package cmd

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-solver/internal"
)

func Serve(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP API",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`serve starts the HTTP API on the configured port.

			POST /analysis with {"board": [9 marks], "player": "X"} returns
			every optimal move for the player together with its score, and
			GET /analysis/{id} returns a previously stored report. Reports
			are kept in Redis unless redis.disabled is set in the config.`),
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.RunApp(newLogger(os.Stdout, opts.conf.LogLevel), opts.conf)
		},
	}
}
