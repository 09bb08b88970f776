package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sadhikari20/AIJobInsight/internal/catalog"
)

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "List the supported job titles and career levels",
	RunE:  runCatalogs,
}

func init() {
	rootCmd.AddCommand(catalogsCmd)
}

func runCatalogs(_ *cobra.Command, _ []string) error {
	fmt.Fprintln(os.Stdout, "Job Titles:")
	for _, title := range catalog.JobTitles {
		fmt.Fprintf(os.Stdout, "  %s\n", title)
	}

	fmt.Fprintln(os.Stdout, "\nCareer Levels:")
	for _, level := range catalog.CareerLevels {
		fmt.Fprintf(os.Stdout, "  %s\n", level)
	}

	return nil
}
