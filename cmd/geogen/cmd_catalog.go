package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PatrikBak/GeoGen-sub011/catalog"
	"github.com/PatrikBak/GeoGen-sub011/internal/format"
)

func newConstructionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constructions",
		Short: "List the predefined constructions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := tableMode(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.Constructions(m, catalog.Predefined()))
			return nil
		},
	}
}

func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the layouts and their symmetry groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := tableMode(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.Layouts(m))
			return nil
		},
	}
}
