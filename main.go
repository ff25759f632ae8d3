// Command create-sets はラベル付き画像データセットを教師データとテストデータに分割する。
//
// 各クラスのファイルを指定した割合でランダムに振り分け、カレントディレクトリの
// train_images/ と test_images/ にコピーする。2つのディレクトリは実行のたびに
// 作り直される。
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"create-sets/internal/config"
	"create-sets/internal/datasets"
	"create-sets/internal/logging"
	"create-sets/internal/processor"
)

// 終了コード
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	cmd := newRootCommand(afero.NewOsFs(), os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCommand(fs afero.Fs, stderr io.Writer) *cobra.Command {
	cfg := config.NewDefaultConfig()

	cmd := &cobra.Command{
		Use:   "create-sets",
		Short: "Create a training set and test set from a dataset",
		Example: `  create-sets -d orl -t 70 -r 30
  create-sets --dataset mnist --train 80 --test 20 --seed 1 --manifest split.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return config.NewUsageError("unrecognized arguments: " + strings.Join(args, " "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Seeded = cmd.Flags().Changed("seed")
			return run(fs, cfg, stderr)
		},
	}
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return config.NewUsageError(err.Error())
	})

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Dataset, "dataset", "d", "", "name of dataset ("+strings.Join(config.Datasets, ", ")+")")
	flags.IntVarP(&cfg.TrainPercent, "train", "t", 0, "percentage of training set (1-99)")
	flags.IntVarP(&cfg.TestPercent, "test", "r", 0, "percentage of test set (1-99)")
	flags.Int64Var(&cfg.Seed, "seed", 0, "random seed (default: current time)")
	flags.StringVar(&cfg.Manifest, "manifest", "", "write the split to this .yaml/.yml/.json file")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log every class")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "hide the progress bar")

	return cmd
}

func run(fs afero.Fs, cfg *config.Config, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(stderr, cfg.Verbose)

	dataset, err := datasets.Open(fs, cfg.Dataset)
	if err != nil {
		return err
	}

	opts := []processor.Option{processor.WithLogger(logger)}
	if !cfg.Quiet {
		opts = append(opts, processor.WithProgress(stderr))
	}

	_, err = processor.NewSplitter(fs, dataset, cfg, opts...).Run()
	return err
}

// exitCode はエラーに対応する終了コードを返す
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case config.IsUsage(err):
		return exitUsage
	}
	return exitFailure
}
