package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/foomo/htmlcompare"
)

func newTagsCmd(v *viper.Viper) *cobra.Command {
	return newListCmd(v, "tags <source>", "list the distinct tags of a document", htmlcompare.AllTags)
}

func newAttributesCmd(v *viper.Viper) *cobra.Command {
	return newListCmd(v, "attributes <source>", "list the distinct attribute keys of a document", htmlcompare.AllAttributes)
}

func newListCmd(v *viper.Viper, use, short string, list func(source []byte) ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cnf, err := loadConfig(v)
			if err != nil {
				return err
			}
			source, err := cnf.NewLoader().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			values, err := list(source)
			if err != nil {
				return err
			}
			for _, value := range values {
				fmt.Fprintln(cmd.OutOrStdout(), value)
			}
			return nil
		},
	}
}

func newSnapshotCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <source> <path>",
		Short: "write a document to a file to validate against later",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cnf, err := loadConfig(v)
			if err != nil {
				return err
			}
			source, err := cnf.NewLoader().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := htmlcompare.WriteSource(string(source), args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", args[0], "to", args[1])
			return nil
		},
	}
}
