package processor

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"create-sets/internal/config"
)

// manifestPerm は分割記録ファイルのパーミッション
const manifestPerm = 0o664

// Manifest は1回の分割結果の記録
type Manifest struct {
	Dataset      string       `yaml:"dataset" json:"dataset"`
	TrainPercent int          `yaml:"train" json:"train"`
	TestPercent  int          `yaml:"test" json:"test"`
	Seed         int64        `yaml:"seed" json:"seed"`
	TrainDir     string       `yaml:"train_dir" json:"train_dir"`
	TestDir      string       `yaml:"test_dir" json:"test_dir"`
	Classes      []ClassSplit `yaml:"classes" json:"classes"`
}

// ClassSplit は1クラス分の分割結果。Train/Test は出力先のファイル名。
type ClassSplit struct {
	Class int      `yaml:"class" json:"class"`
	Path  string   `yaml:"path" json:"path"`
	Total int      `yaml:"total" json:"total"`
	Train []string `yaml:"train" json:"train"`
	Test  []string `yaml:"test" json:"test"`
}

// NumTrain は教師データの総数を返す
func (m *Manifest) NumTrain() int {
	n := 0
	for _, c := range m.Classes {
		n += len(c.Train)
	}
	return n
}

// NumTest はテストデータの総数を返す
func (m *Manifest) NumTest() int {
	n := 0
	for _, c := range m.Classes {
		n += len(c.Test)
	}
	return n
}

// Marshal は拡張子に応じてYAMLかJSONに変換
func (m *Manifest) Marshal(path string) ([]byte, error) {
	format, err := config.ManifestFormat(path)
	if err != nil {
		return nil, err
	}
	if format == "json" {
		return json.MarshalIndent(m, "", "  ")
	}
	return yaml.Marshal(m)
}

// WriteManifest は分割記録をpathに書き出す
func WriteManifest(fs afero.Fs, path string, m *Manifest) error {
	b, err := m.Marshal(path)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, b, manifestPerm); err != nil {
		return errors.Wrapf(err, "failed to write manifest %q", path)
	}
	return nil
}

// LoadManifest はpathから分割記録を読み込む
func LoadManifest(fs afero.Fs, path string) (*Manifest, error) {
	format, err := config.ManifestFormat(path)
	if err != nil {
		return nil, err
	}

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %q", path)
	}

	m := new(Manifest)
	if format == "json" {
		err = json.Unmarshal(b, m)
	} else {
		err = yaml.Unmarshal(b, m)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse manifest %q", path)
	}
	return m, nil
}
