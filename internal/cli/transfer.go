package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/confstore/internal/format"
	"github.com/dshills/confstore/internal/store"
)

// Transfer flags
var (
	flagTo  string
	flagOut string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Convert a file to JSON, INI, TOML or YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		codec, err := exportCodec(cfg.Writer)
		if err != nil {
			return err
		}

		s, err := store.Open(args[0], store.MustExist,
			store.WithLogger(logger), store.WithCodec(codec), store.WithBOM(false))
		if err != nil {
			return runtimeError(cmd, err)
		}
		data, err := s.Bytes()
		if err != nil {
			return runtimeError(cmd, err)
		}

		if flagOut == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(flagOut, data, 0o644); err != nil {
			return runtimeError(cmd, fmt.Errorf("writing %s: %w", flagOut, err))
		}
		logger.Debug("exported", "from", args[0], "to", flagOut, "format", codec.Name())
		return nil
	},
}

// exportCodec picks --to, then the --out extension, then the configured writer.
func exportCodec(writer string) (format.Codec, error) {
	if flagTo != "" {
		return format.ByName(flagTo)
	}
	if flagOut != "" {
		if c := format.ForPath(flagOut); c != nil {
			return c, nil
		}
	}
	return format.ByName(writer)
}

var importCmd = &cobra.Command{
	Use:   "import <src> <dst>",
	Short: "Merge every value of src into dst and save it",
	Long:  "Import decodes src (format chosen by extension, or detected for unknown extensions) and sets each of its values in dst, creating dst if needed.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, dst := args[0], args[1]

		data, err := os.ReadFile(src)
		if err != nil {
			return runtimeError(cmd, fmt.Errorf("reading %s: %w", src, err))
		}
		data = format.StripBOM(data)
		codec := format.ForPath(src)
		if codec == nil {
			codec = format.Detect(data)
		}
		layer, err := codec.Decode(data)
		if err != nil {
			return runtimeError(cmd, fmt.Errorf("%s: %w", src, err))
		}

		s, err := openStore(dst, store.CreateIfMissing, cfg)
		if err != nil {
			return runtimeError(cmd, err)
		}
		count := 0
		for _, sec := range layer {
			for _, item := range sec.Items {
				s.SetString(sec.Name, item.Name, item.Value)
				count++
			}
		}
		if err := saveStore(s, cfg); err != nil {
			return runtimeError(cmd, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d values from %s (%s) into %s\n", count, src, codec.Name(), dst)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagTo, "to", "", "Target format (json, ini, toml, yaml)")
	exportCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}
