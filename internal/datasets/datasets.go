// Package datasets はデータセットごとのディレクトリ構成とファイル名規則を表す。
package datasets

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"create-sets/internal/config"
)

// Descriptor はデータセットの構成を表す
//
// クラスは 0 から NumClasses()-1 の番号で指定する。
type Descriptor interface {
	// Name はデータセット名を返す
	Name() string
	// Root はデータセットのルートディレクトリを返す
	Root() string
	// NumClasses はクラス数を返す
	NumClasses() int
	// ClassPath はクラスのファイルが置かれたディレクトリを返す
	ClassPath(class int) string
	// ClassFiles はクラスに属するファイル名 (ClassPath からの相対) を返す
	ClassFiles(class int) ([]string, error)
	// DestFilename は出力先でのファイル名を返す。クラスをまたいで一意になる。
	DestFilename(class int, filename string) string
}

// Open はデータセット名に対応する Descriptor を作成
func Open(fs afero.Fs, name string) (Descriptor, error) {
	switch name {
	case config.DatasetFERET:
		return NewFERET(fs, FERETRoot)
	case config.DatasetMNIST:
		return NewMNIST(fs, MNISTRoot), nil
	case config.DatasetORL:
		return NewORL(fs, ORLRoot), nil
	}
	return nil, errors.Errorf("unknown dataset %q", name)
}

func checkClass(d Descriptor, class int) error {
	if class < 0 || class >= d.NumClasses() {
		return errors.Errorf("%s: class %d out of range [0, %d)", d.Name(), class, d.NumClasses())
	}
	return nil
}
