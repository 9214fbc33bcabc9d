// Command shortguid converts identifiers between the canonical UUID forms
// and the 22-character short form from the command line.  It is a thin shell
// over the shortguid package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/shortguid"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shortguid",
		Short:         "Convert UUIDs to and from their short URL-safe form",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(encodeCmd())
	cmd.AddCommand(decodeCmd())
	cmd.AddCommand(newCmd())
	return cmd
}

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <uuid>",
		Args:  cobra.ExactArgs(1),
		Short: "Print the 22-character short form of a UUID",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shortguid.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <short>",
		Args:  cobra.ExactArgs(1),
		Short: "Print the dashed UUID form of a short identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := shortguid.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id.UUID())
			return nil
		},
	}
}

func newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Args:  cobra.NoArgs,
		Short: "Generate a random identifier and print both renderings",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := shortguid.New()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, id.UUID())
			return nil
		},
	}
}
