package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/foomo/htmlcompare"
	"github.com/foomo/htmlcompare/reports"
)

var errInvalid = errors.New("documents are not equivalent")

// textEverywhere is the --ignore-text value for all tags
const textEverywhere = "*"

func newValidateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <current> <original>",
		Short: "validate a current document against an original",
		Long: `validate loads both documents from files, file:// or http(s) urls and
compares them. The exit code is 1, if the documents are not equivalent and
2 for any other error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cnf, err := loadConfig(v)
			if err != nil {
				return err
			}
			format := reports.Format(v.GetString("format"))
			if !validFormat(format) {
				return fmt.Errorf("unsupported report format: %s", format)
			}
			opts := append(cnf.Options(), ruleOptions(v)...)
			if v.GetBool("no-count") {
				opts = append(opts, htmlcompare.WithoutElementCount())
			}
			validator, err := htmlcompare.New(opts...)
			if err != nil {
				return err
			}
			report, err := validator.ValidateURL(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if err := reports.Write(cmd.OutOrStdout(), report, format); err != nil {
				return err
			}
			if v.GetBool("dump") {
				spew.Fdump(cmd.ErrOrStderr(), report)
			}
			if !report.Valid {
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringSlice("ignore-tag", nil, "ignore all elements with this tag")
	cmd.Flags().StringSlice("ignore-attribute", nil, "ignore this attribute on all tags")
	cmd.Flags().StringSlice("ignore-class", nil, "ignore this class on all tags")
	cmd.Flags().StringSlice("ignore-text", nil, `ignore the text of this tag, "*" for all tags`)
	cmd.Flags().Bool("no-count", false, "do not compare the number of elements")
	cmd.Flags().String("format", string(reports.FormatText), "report format: text, summary, json or yaml")
	cmd.Flags().Bool("dump", false, "dump the report to stderr")
	for _, name := range []string{"ignore-tag", "ignore-attribute", "ignore-class", "ignore-text", "no-count", "format", "dump"} {
		_ = v.BindPFlag(name, cmd.Flags().Lookup(name))
	}
	return cmd
}

// ruleOptions turns the --ignore-* flags into rules, they are added after
// the rules of the config file.
func ruleOptions(v *viper.Viper) []htmlcompare.Option {
	opts := []htmlcompare.Option{
		htmlcompare.WithIgnoredTags(v.GetStringSlice("ignore-tag")...),
	}
	if attributes := v.GetStringSlice("ignore-attribute"); len(attributes) > 0 {
		opts = append(opts, htmlcompare.WithIgnoreRules(htmlcompare.IgnoreRule{Attributes: attributes}))
	}
	if classes := v.GetStringSlice("ignore-class"); len(classes) > 0 {
		opts = append(opts, htmlcompare.WithIgnoreRules(htmlcompare.IgnoreRule{ClassNames: classes}))
	}
	for _, tag := range v.GetStringSlice("ignore-text") {
		tag = strings.TrimSpace(tag)
		if tag == textEverywhere {
			tag = ""
		}
		opts = append(opts, htmlcompare.WithIgnoreRules(htmlcompare.IgnoreRule{
			TagName:    tag,
			Attributes: []string{htmlcompare.TextAttribute},
		}))
	}
	return opts
}

func validFormat(format reports.Format) bool {
	for _, f := range reports.Formats {
		if f == format {
			return true
		}
	}
	return false
}
