package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dshills/confstore/internal/config"
	"github.com/dshills/confstore/internal/format"
	"github.com/dshills/confstore/internal/output"
	"github.com/dshills/confstore/internal/store"
)

// Value flags
var (
	flagType         string
	flagDefaultsFile string
	flagDryRun       bool
)

var getCmd = &cobra.Command{
	Use:   "get <file> <section> <key>",
	Short: "Print a value, falling back to the defaults file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
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

		sec, key := args[1], args[2]
		if !s.HasUserValue(sec, key) && !s.HasDefaultValue(sec, key) {
			return notFound(cmd, sec, key)
		}
		value, err := typedValue(s, sec, key, flagType)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <file> <section> <key> <value>",
	Short: "Set a value and save the file",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, sec, key, value := args[0], args[1], args[2], args[3]

		if flagDryRun {
			return dryRunSet(cmd, cfg, path, sec, key, value)
		}

		s, err := openStore(path, store.CreateIfMissing, cfg)
		if err != nil {
			return runtimeError(cmd, err)
		}
		if err := setTyped(s, sec, key, value, flagType); err != nil {
			return err
		}
		if err := saveStore(s, cfg); err != nil {
			return runtimeError(cmd, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s/%s = %s\n", sec, key, value)
		return nil
	},
}

var unsetCmd = &cobra.Command{
	Use:   "unset <file> <section> <key>",
	Short: "Remove a value and save the file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := openStore(args[0], store.MustExist, cfg)
		if err != nil {
			return runtimeError(cmd, err)
		}

		sec, key := args[1], args[2]
		if !s.RemoveValue(sec, key) {
			return notFound(cmd, sec, key)
		}
		if err := saveStore(s, cfg); err != nil {
			return runtimeError(cmd, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s/%s\n", sec, key)
		return nil
	},
}

// dryRunSet prints the change set would make to the file without touching
// it. The diff compares the bytes on disk with what SaveSafe would write; a
// missing file counts as empty.
func dryRunSet(cmd *cobra.Command, cfg config.Config, path, sec, key, value string) error {
	var before []byte
	s, err := openStore(path, store.MustExist, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		codec, err := cfg.Codec()
		if err != nil {
			return err
		}
		s = store.OpenString("", store.WithLogger(logger), store.WithCodec(codec))
	case err != nil:
		return runtimeError(cmd, err)
	default:
		if before, err = s.FileBytes(); err != nil {
			return runtimeError(cmd, err)
		}
	}

	if err := setTyped(s, sec, key, value, flagType); err != nil {
		return err
	}
	after, err := s.Bytes()
	if err != nil {
		return runtimeError(cmd, err)
	}

	oldText := string(format.StripBOM(before))
	newText := string(format.StripBOM(after))
	changed, err := output.Diff(cmd.OutOrStdout(), oldText, newText)
	if err != nil {
		return runtimeError(cmd, err)
	}
	if !changed {
		fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
	}
	return nil
}

func typedValue(s *store.Store, sec, key, typ string) (string, error) {
	switch typ {
	case "", "string":
		v, _ := s.GetString(sec, key)
		return v, nil
	case "int":
		return strconv.FormatInt(s.GetInt(sec, key), 10), nil
	case "uint":
		return strconv.FormatUint(s.GetUint(sec, key), 10), nil
	case "bool":
		return strconv.FormatBool(s.GetBool(sec, key)), nil
	case "double":
		return strconv.FormatFloat(s.GetDouble(sec, key), 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unknown value type %q (want string, int, uint, bool or double)", typ)
	}
}

func setTyped(s *store.Store, sec, key, value, typ string) error {
	switch typ {
	case "", "string":
		s.SetString(sec, key, value)
	case "int":
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid int value %q: %w", value, err)
		}
		s.SetInt(sec, key, n)
	case "uint":
		n, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid uint value %q: %w", value, err)
		}
		s.SetUint(sec, key, n)
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool value %q: %w", value, err)
		}
		s.SetBool(sec, key, b)
	case "double":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid double value %q: %w", value, err)
		}
		s.SetDouble(sec, key, f)
	default:
		return fmt.Errorf("unknown value type %q (want string, int, uint, bool or double)", typ)
	}
	return nil
}

func init() {
	getCmd.Flags().StringVar(&flagType, "type", "", "Read the value as string, int, uint, bool or double")
	getCmd.Flags().StringVar(&flagDefaultsFile, "defaults", "", "File whose values are used when a key is missing")

	setCmd.Flags().StringVar(&flagType, "type", "", "Validate and store the value as string, int, uint, bool or double")
	setCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the change as a diff without saving")
}
