// Package cli implements vgmctl, a terminal front end for the catalog API.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vgm/internal/client"
	"vgm/internal/listview"
)

const defaultAPIURL = "http://localhost:5000"

type app struct {
	v   *viper.Viper
	in  io.Reader
	out io.Writer
}

func (a *app) session() *listview.Session {
	return listview.NewSession(client.New(a.v.GetString("api_url")))
}

// New returns the root vgmctl command. Prompts read from in; tables and
// messages go to out.
func New(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), in: in, out: out}

	var cfgFile string
	root := &cobra.Command{
		Use:           "vgmctl",
		Short:         "Browse and manage the video game catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				a.v.SetConfigFile(cfgFile)
				if err := a.v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			}
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("api-url", defaultAPIURL, "catalog API base URL")

	a.v.SetDefault("api_url", defaultAPIURL)
	a.v.SetEnvPrefix("VGM")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlag("api_url", root.PersistentFlags().Lookup("api-url"))

	root.AddCommand(newGamesCmd(a))
	root.AddCommand(newPlatformsCmd(a))
	return root
}
