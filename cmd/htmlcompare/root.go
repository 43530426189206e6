package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/foomo/htmlcompare/config"
	"github.com/foomo/htmlcompare/internal/log"
)

const envPrefix = "HTMLCOMPARE"

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	v := viper.New()
	rootCmd := &cobra.Command{
		Use:   "htmlcompare",
		Short: "compare the structure and content of html documents",
		Long: `htmlcompare checks, if a current html document is an equivalent of an
original one. Every element of the current document needs an element with
the same tag, attributes and text in the original document. Tags,
attributes, classes and text can be ignored.

Examples:
  # compare two files
  htmlcompare validate current.html original.html

  # compare a live page with a snapshot, ignoring scripts and test ids
  htmlcompare validate https://example.com/ snapshots/index.html \
      --ignore-tag script --ignore-attribute data-test-id --no-count

  # take a snapshot
  htmlcompare snapshot https://example.com/ snapshots/index.html`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().String("config", "", "yaml config file with ignore rules")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("robots", false, "respect robots.txt when loading urls")
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("robots", rootCmd.PersistentFlags().Lookup("robots"))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newValidateCmd(v),
		newTagsCmd(v),
		newAttributesCmd(v),
		newSnapshotCmd(v),
	)
	return rootCmd
}

// loadConfig reads the config file, if there is one, applies the global
// flags and sets up logging.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	cnf := config.Default()
	if file := v.GetString("config"); file != "" {
		fileCnf, err := config.Get(file)
		if err != nil {
			return nil, err
		}
		cnf = fileCnf
	}
	if level := v.GetString("log-level"); level != "" {
		cnf.Log.Level = level
	}
	if v.GetBool("robots") {
		cnf.Loader.RespectRobots = true
	}
	if err := cnf.Validate(); err != nil {
		return nil, err
	}
	if err := log.Configure(cnf.Log.Env, cnf.Log.Level); err != nil {
		return nil, err
	}
	return cnf, nil
}
