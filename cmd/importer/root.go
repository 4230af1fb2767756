package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fieldservice/internal/adapter/persistence/repository"
	"fieldservice/internal/config"
	"fieldservice/internal/importer"
	"fieldservice/internal/infrastructure/database"
	"fieldservice/internal/infrastructure/logging"
	"fieldservice/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

type importFlags struct {
	dir    string
	key    string
	dryRun bool
}

func newRootCmd() *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "importer",
		Short: "Bulk load JSON collections into the document store",
		Long: `Reads every <collection>.json file in --dir and upserts its documents into the
DynamoDB table TABLE_PREFIX+<collection>. A file holds either an array of objects
or an object keyed by id. Documents without the key field are reported and skipped.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.dir, "dir", "d", "", "directory containing <collection>.json files")
	cmd.Flags().StringVarP(&flags.key, "key", "k", importer.DefaultKeyField, "document field used as the item key")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "validate files without writing")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}

func runImport(cmd *cobra.Command, flags *importFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	var writer interfaces.IDocumentWriter
	if !flags.dryRun {
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect dynamodb: %w", err)
		}
		writer = repository.NewDynamoDocumentWriter(ddb, cfg.TablePrefix)
	}

	report, err := importer.New(writer, log).Run(ctx, importer.Options{
		Dir:      flags.dir,
		KeyField: flags.key,
		DryRun:   flags.dryRun,
	})
	printReport(cmd.OutOrStdout(), report)
	if err != nil {
		return err
	}
	if report.Skipped() > 0 {
		return fmt.Errorf("%d document(s) skipped", report.Skipped())
	}
	return nil
}

func printReport(w io.Writer, report importer.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLLECTION\tIMPORTED\tSKIPPED")
	for _, c := range report.Collections {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", c.Collection, c.Imported, c.Skipped)
	}
	_ = tw.Flush()

	for _, c := range report.Collections {
		for _, e := range c.Errors {
			fmt.Fprintf(w, "skipped %s\n", e)
		}
	}
	if report.DryRun {
		fmt.Fprintln(w, "dry run: nothing was written")
	}
}
