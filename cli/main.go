package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"bitflag/store"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	defaultDB   = "bitflag.db"
	lockTimeout = 5 * time.Second
)

func getDBPath() string {
	if path := os.Getenv("BITFLAG_DB"); path != "" {
		return path
	}
	return defaultDB
}

type settings struct {
	verbose     bool
	kind        string
	mode        string
	db          string
	encoding    string
	compression string
	json        bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	s := &settings{}

	root := &cobra.Command{
		Use:           "bitflag",
		Short:         "Format, parse, decompose and store named bit flag values.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			log.SetOutput(os.Stderr)
			if s.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Log debug output.")
	root.PersistentFlags().StringVarP(&s.kind, "kind", "k", "Permissions", "Flag set to use, see 'bitflag kinds'.")
	root.PersistentFlags().StringVar(&s.db, "db", getDBPath(), "Store file, defaults to $BITFLAG_DB.")

	withKind := func(run func(cmd *cobra.Command, k kind, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			k, err := lookupKind(s.kind)
			if err != nil {
				return err
			}
			return run(cmd, k, args)
		}
	}
	withMode := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&s.mode, "mode", "m", string(modeRetain), "Text mode: retain, truncate or strict.")
	}

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the known flag sets and their flags.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range kinds {
				k.describe(cmd.OutOrStdout())
			}
		},
	}

	formatCmd := &cobra.Command{
		Use:   "format <bits>",
		Short: "Print the text form of a bits value.",
		Args:  cobra.ExactArgs(1),
		RunE: withKind(func(cmd *cobra.Command, k kind, args []string) error {
			m, err := parseMode(s.mode)
			if err != nil {
				return err
			}
			return k.format(cmd.OutOrStdout(), args[0], m)
		}),
	}
	withMode(formatCmd)

	parseCmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse the text form of a value and print it in full.",
		Args:  cobra.ExactArgs(1),
		RunE: withKind(func(cmd *cobra.Command, k kind, args []string) error {
			m, err := parseMode(s.mode)
			if err != nil {
				return err
			}
			return k.parse(cmd.OutOrStdout(), args[0], m)
		}),
	}
	withMode(parseCmd)

	iterCmd := &cobra.Command{
		Use:   "iter <bits>",
		Short: "Decompose a bits value into named flags and remaining bits.",
		Args:  cobra.ExactArgs(1),
		RunE: withKind(func(cmd *cobra.Command, k kind, args []string) error {
			return k.iter(cmd.OutOrStdout(), args[0])
		}),
	}

	putCmd := &cobra.Command{
		Use:   "put <key> <text>",
		Short: "Store a value under key.",
		Args:  cobra.ExactArgs(2),
		RunE: withKind(func(cmd *cobra.Command, k kind, args []string) error {
			enc, err := store.ParseEncoding(s.encoding)
			if err != nil {
				return err
			}
			comp, err := store.ParseCompressAlgorithm(s.compression)
			if err != nil {
				return err
			}
			return k.put(s.db, &store.Options{
				Timeout:     lockTimeout,
				Encoding:    enc,
				Compression: comp,
			}, args[0], args[1])
		}),
	}
	putCmd.Flags().StringVar(&s.encoding, "encoding", store.EncodingBinary.String(), "Record encoding: binary or text.")
	putCmd.Flags().StringVar(&s.compression, "compression", store.CompSnappy.String(), "Record compression: snappy, lz4 or none.")

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under key.",
		Args:  cobra.ExactArgs(1),
		RunE: withKind(func(cmd *cobra.Command, k kind, args []string) error {
			return k.get(cmd.OutOrStdout(), s.db, args[0])
		}),
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete the value stored under key.",
		Args:  cobra.ExactArgs(1),
		RunE: withKind(func(cmd *cobra.Command, k kind, args []string) error {
			if err := requireStore(s.db); err != nil {
				return err
			}
			return k.del(s.db, args[0])
		}),
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print every stored value of the kind.",
		Args:  cobra.NoArgs,
		RunE: withKind(func(cmd *cobra.Command, k kind, args []string) error {
			return k.list(cmd.OutOrStdout(), s.db, s.json)
		}),
	}
	listCmd.Flags().BoolVar(&s.json, "json", false, "Print one JSON object per line.")

	root.AddCommand(kindsCmd, formatCmd, parseCmd, iterCmd, putCmd, getCmd, deleteCmd, listCmd)
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bitflag:", err)
		os.Exit(1)
	}
}
