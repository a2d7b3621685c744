package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/confstore/internal/output"
	"github.com/dshills/confstore/internal/redact"
	"github.com/dshills/confstore/internal/store"
)

// Display flags
var (
	flagFormat     string
	flagNoRedact   bool
	flagRedactKeys []string
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <file>",
	Short: "List section names in file order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := openStore(args[0], store.MustExist, cfg)
		if err != nil {
			return runtimeError(cmd, err)
		}
		for i := 0; i < s.SectionCount(); i++ {
			name, _ := s.SectionName(i)
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show every effective value, with secrets redacted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		writer, err := output.GetWriter(cfg.Format)
		if err != nil {
			return err
		}

		s, err := openStore(args[0], store.MustExist, cfg)
		if err != nil {
			return runtimeError(cmd, err)
		}
		if flagDefaultsFile != "" {
			if err := s.OpenDefaults(flagDefaultsFile); err != nil {
				return runtimeError(cmd, err)
			}
		}

		views := s.Snapshot()
		if cfg.Redact {
			views = redactViews(views, flagRedactKeys)
		} else {
			logger.Warn("secret redaction is disabled")
		}
		if err := writer.Write(cmd.OutOrStdout(), views); err != nil {
			return runtimeError(cmd, err)
		}
		return nil
	},
}

func redactViews(views []store.SectionView, patterns []string) []store.SectionView {
	out := make([]store.SectionView, len(views))
	for i, v := range views {
		entries := make([]store.Entry, len(v.Entries))
		for j, e := range v.Entries {
			e.Value = redact.Value(v.Name, e.Name, e.Value, patterns)
			entries[j] = e
		}
		out[i] = store.SectionView{Name: v.Name, Entries: entries}
	}
	return out
}

func init() {
	showCmd.Flags().StringVar(&flagDefaultsFile, "defaults", "", "File whose values fill in missing keys")
	showCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, ini, report)")
	showCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Show secret values (use with caution)")
	showCmd.Flags().StringSliceVar(&flagRedactKeys, "redact-key", nil, "Also redact keys matching a section.key glob (repeatable)")
}
