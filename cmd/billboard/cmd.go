package main

import (
	"fmt"
	"time"

	"github.com/callebjorkell/billboard/internal/billboard"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "billboard",
		Short: "Advertising billboard on a 16x2 character LCD",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Lookup("debug").Changed {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.PersistentFlags().Bool("debug", false, "Turn on debug logging.")

	return rootCmd
}

var (
	buildTime    = "unknown"
	buildVersion = "dev"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s (built: %s)\n", buildVersion, buildTime)
		},
	}
}

func newStartCmd() *cobra.Command {
	configFile := ""
	seed := int64(0)
	cmd := cobra.Command{
		Use:   "start",
		Short: "Starts rotating advertisements on the display",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			conf, err := readConfig(configFile)
			if err != nil {
				log.Fatal(err)
			}
			if !cmd.Flags().Lookup("seed").Changed {
				seed = time.Now().UnixNano()
			}
			startBillboard(conf, seed)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file. The built-in catalog is used when empty.")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the customer draw, for reproducible runs.")

	return &cmd
}

func newPreviewCmd() *cobra.Command {
	mode := ""
	duration := time.Duration(0)
	cmd := cobra.Command{
		Use:   "preview <text>",
		Short: "Renders a message on a simulated display and prints every frame",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			m, err := billboard.ParseMode(mode)
			if err != nil {
				log.Fatal(err)
			}
			for _, frame := range preview(billboard.Message{Text: args[0], Mode: m}, duration) {
				fmt.Println(frame)
			}
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "scroll", "Display mode: static, scroll or blink.")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 4*time.Second, "How long the message is shown.")

	return &cmd
}
