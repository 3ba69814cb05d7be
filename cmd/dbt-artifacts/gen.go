package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/schemadrift/dbtartifacts/internal/gen"
	"github.com/schemadrift/dbtartifacts/registry"
)

func newGenCmd() *cobra.Command {
	var specPath string
	var outDir string
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Regenerate the contract tables from the YAML contract manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(specPath)
			if err != nil {
				return err
			}
			defer f.Close()
			spec, err := registry.LoadContractSpec(f)
			if err != nil {
				return err
			}

			contracts, err := gen.RenderContracts(spec, specPath)
			if err != nil {
				return err
			}
			tags, err := gen.RenderTags("dbtartifacts", spec, specPath)
			if err != nil {
				return err
			}

			outputs := map[string][]byte{
				filepath.Join(outDir, "registry", "contracts_gen.go"): contracts,
				filepath.Join(outDir, "contract_tags_gen.go"):         tags,
			}
			for path, code := range outputs {
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					return err
				}
				if err := os.WriteFile(path, code, 0o644); err != nil {
					return err
				}
				logger.Info("wrote generated file", zap.String("path", path))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&specPath, "spec", "registry/contracts.yaml", "contract manifest to render from")
	cmd.Flags().StringVar(&outDir, "out", ".", "module root to write generated files under")
	return cmd
}
