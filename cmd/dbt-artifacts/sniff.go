package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/schemadrift/dbtartifacts"
	"github.com/schemadrift/dbtartifacts/registry"
)

func newSniffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sniff FILE...",
		Short: "Detect the category and schema version of dbt artifact files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if err := sniffFile(cmd.OutOrStdout(), path); err != nil {
					logger.Warn("sniff failed", zap.String("file", path), zap.Error(err))
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}

func sniffFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	raw, err := dbtartifacts.DecodeReader(f)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	// An artifact of an unsupported version still identifies its category;
	// prefer reporting that over a generic rejection.
	var unsupported error
	for _, c := range dbtartifacts.Categories() {
		version, err := dbtartifacts.DetectVersion(c, raw)
		if err == nil {
			line := fmt.Sprintf("%s: %s v%d", path, c, version)
			if ct, ok := registry.Lookup(string(c), version); ok {
				line += " (" + ct.SchemaURL + ")"
			}
			fmt.Fprintln(w, line)
			logger.Debug("detected artifact",
				zap.String("file", path),
				zap.String("category", string(c)),
				zap.Int("version", version))
			return nil
		}
		if pe, ok := dbtartifacts.AsParseError(err); ok && pe.Kind == dbtartifacts.KindUnsupportedVersion && unsupported == nil {
			unsupported = err
		}
	}
	if unsupported != nil {
		return unsupported
	}
	return errors.New("not a recognizable dbt artifact")
}
