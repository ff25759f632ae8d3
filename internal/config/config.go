package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// データセット名
const (
	DatasetFERET = "feret"
	DatasetMNIST = "mnist"
	DatasetORL   = "orl"
)

// 出力先ディレクトリ
const (
	TrainDir = "train_images"
	TestDir  = "test_images"
)

// DirPerm は出力ディレクトリのパーミッション
const DirPerm os.FileMode = 0o775

// 割合の範囲
const (
	MinPercent = 1
	MaxPercent = 99
)

// Datasets は選択可能なデータセット名の一覧
var Datasets = []string{DatasetFERET, DatasetMNIST, DatasetORL}

// Config は設定情報を保持
type Config struct {
	Dataset      string      // データセット名
	TrainPercent int         // 教師データの割合 (%)
	TestPercent  int         // テストデータの割合 (%)
	Seed         int64       // 乱数シード
	Seeded       bool        // シードが明示的に指定されたか
	Manifest     string      // 分割記録の出力先 (空なら出力しない)
	Verbose      bool        // デバッグログ
	Quiet        bool        // プログレスバーを表示しない
	TrainDir     string      // 教師データの出力先
	TestDir      string      // テストデータの出力先
	DirPerm      os.FileMode // 出力ディレクトリのパーミッション
}

// NewDefaultConfig はデフォルト設定を返す
func NewDefaultConfig() *Config {
	return &Config{
		TrainDir: TrainDir,
		TestDir:  TestDir,
		DirPerm:  DirPerm,
	}
}

// Validate は設定の妥当性をチェック
//
// ファイルシステムには一切触れない。
func (c *Config) Validate() error {
	var missing []string
	if c.Dataset == "" {
		missing = append(missing, "-d/--dataset")
	}
	if c.TrainPercent == 0 {
		missing = append(missing, "-t/--train")
	}
	if c.TestPercent == 0 {
		missing = append(missing, "-r/--test")
	}
	if len(missing) > 0 {
		return usagef("the following arguments are required: %s", strings.Join(missing, ", "))
	}

	if !IsDataset(c.Dataset) {
		return usagef("argument -d/--dataset: invalid choice: %q (choose from %s)",
			c.Dataset, strings.Join(Datasets, ", "))
	}
	if !inRange(c.TrainPercent) {
		return usagef("argument -t/--train: invalid choice: %d (choose from %d-%d)",
			c.TrainPercent, MinPercent, MaxPercent)
	}
	if !inRange(c.TestPercent) {
		return usagef("argument -r/--test: invalid choice: %d (choose from %d-%d)",
			c.TestPercent, MinPercent, MaxPercent)
	}

	if c.Manifest != "" {
		if _, err := ManifestFormat(c.Manifest); err != nil {
			return err
		}
	}

	if c.TrainPercent+c.TestPercent != 100 {
		return ErrPercentSum
	}

	return nil
}

// NumTrain はn件のうち教師データに回す件数を返す (切り捨て)
func (c *Config) NumTrain(n int) int {
	return n * c.TrainPercent / 100
}

// IsDataset はnameが既知のデータセット名か判定
func IsDataset(name string) bool {
	for _, d := range Datasets {
		if d == name {
			return true
		}
	}
	return false
}

// ManifestFormat は拡張子から分割記録の形式 ("yaml" か "json") を返す
func ManifestFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".json":
		return "json", nil
	}
	return "", usagef("argument --manifest: unsupported extension %q (use .yaml, .yml or .json)", filepath.Ext(path))
}

func inRange(p int) bool {
	return p >= MinPercent && p <= MaxPercent
}

func usagef(format string, args ...any) error {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}
