package processor

import (
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"

	"create-sets/internal/config"
	"create-sets/internal/datasets"
	"create-sets/internal/utils"
)

// Splitter はデータセットを教師データとテストデータに分割してコピーする
type Splitter struct {
	fs       afero.Fs
	dataset  datasets.Descriptor
	config   *config.Config
	seed     int64
	rng      *rand.Rand
	logger   zerolog.Logger
	progress io.Writer
}

// Option は Splitter のオプション
type Option func(*Splitter)

// WithLogger はロガーを設定
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Splitter) {
		s.logger = logger
	}
}

// WithProgress はプログレスバーの出力先を設定 (nilなら表示しない)
func WithProgress(w io.Writer) Option {
	return func(s *Splitter) {
		s.progress = w
	}
}

// NewSplitter は新しい Splitter を作成
//
// cfg.Seeded が偽なら現在時刻をシードにする。
func NewSplitter(fs afero.Fs, dataset datasets.Descriptor, cfg *config.Config, opts ...Option) *Splitter {
	seed := cfg.Seed
	if !cfg.Seeded {
		seed = time.Now().UnixNano()
	}

	s := &Splitter{
		fs:      fs,
		dataset: dataset,
		config:  cfg,
		seed:    seed,
		rng:     NewRand(seed),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed は使用した乱数シードを返す
func (s *Splitter) Seed() int64 {
	return s.seed
}

// Run は出力先を作り直し、全クラスを分割してコピーする
//
// 途中でコピーに失敗した場合はその時点で中断してエラーを返す。
func (s *Splitter) Run() (*Manifest, error) {
	cfg := s.config
	d := s.dataset

	s.logger.Info().
		Str("dataset", d.Name()).
		Str("root", d.Root()).
		Int("train", cfg.TrainPercent).
		Int("test", cfg.TestPercent).
		Int64("seed", s.seed).
		Msg("データセット分割を開始します")

	// 出力先の初期化
	for _, dir := range []string{cfg.TrainDir, cfg.TestDir} {
		if err := utils.ResetDirectory(s.fs, dir, cfg.DirPerm); err != nil {
			return nil, err
		}
	}

	// クラスごとのファイル一覧
	numClasses := d.NumClasses()
	classFiles := make([][]string, numClasses)
	total := 0
	for i := 0; i < numClasses; i++ {
		files, err := d.ClassFiles(i)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list files of class %d in %q", i, d.ClassPath(i))
		}
		classFiles[i] = files
		total += len(files)
	}
	s.logger.Debug().Int("classes", numClasses).Int("files", total).Msg("クラスを検出しました")

	bar := s.newProgressBar(total)

	m := &Manifest{
		Dataset:      d.Name(),
		TrainPercent: cfg.TrainPercent,
		TestPercent:  cfg.TestPercent,
		Seed:         s.seed,
		TrainDir:     cfg.TrainDir,
		TestDir:      cfg.TestDir,
		Classes:      make([]ClassSplit, 0, numClasses),
	}

	for i, files := range classFiles {
		split := Partition(len(files), cfg.TrainPercent, s.rng)

		train, err := s.copySubset(i, files, split.Train, cfg.TrainDir, bar)
		if err != nil {
			return nil, err
		}
		test, err := s.copySubset(i, files, split.Test, cfg.TestDir, bar)
		if err != nil {
			return nil, err
		}

		s.logger.Debug().
			Int("class", i).
			Int("total", len(files)).
			Int("train", len(train)).
			Int("test", len(test)).
			Msg("クラスを分割しました")

		m.Classes = append(m.Classes, ClassSplit{
			Class: i,
			Path:  d.ClassPath(i),
			Total: len(files),
			Train: train,
			Test:  test,
		})
	}

	if bar != nil {
		_ = bar.Finish()
	}

	if cfg.Manifest != "" {
		if err := WriteManifest(s.fs, cfg.Manifest, m); err != nil {
			return nil, err
		}
		s.logger.Debug().Str("path", cfg.Manifest).Msg("分割記録を書き出しました")
	}

	s.logger.Info().
		Int("classes", numClasses).
		Int("train", m.NumTrain()).
		Int("test", m.NumTest()).
		Msg("データセット分割が完了しました")

	return m, nil
}

// copySubset は選ばれたファイルをdestDirにコピーし、出力先のファイル名を返す
func (s *Splitter) copySubset(class int, files []string, indices []int, destDir string, bar *progressbar.ProgressBar) ([]string, error) {
	classPath := s.dataset.ClassPath(class)
	names := make([]string, 0, len(indices))

	for _, j := range indices {
		name := s.dataset.DestFilename(class, files[j])
		src := filepath.Join(classPath, files[j])
		dst := filepath.Join(destDir, name)

		if err := CopyFile(s.fs, src, dst); err != nil {
			return nil, err
		}
		names = append(names, name)

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return names, nil
}

func (s *Splitter) newProgressBar(total int) *progressbar.ProgressBar {
	if s.progress == nil || total == 0 {
		return nil
	}
	w := s.progress
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("copying"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("images"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}
