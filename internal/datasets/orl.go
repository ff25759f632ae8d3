package datasets

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"create-sets/internal/config"
	"create-sets/internal/utils"
)

// ORLRoot はORLデータセットのデフォルトの場所
const ORLRoot = "datasets/orl_faces"

// ORLNumClasses はORLの被験者数
const ORLNumClasses = 40

// ORL は AT&T (ORL) 顔画像データセット
//
// 被験者ごとに s1 .. s40 のディレクトリがある。
type ORL struct {
	fs   afero.Fs
	root string
}

var _ Descriptor = (*ORL)(nil)

// NewORL は新しいORLを作成
func NewORL(fs afero.Fs, root string) *ORL {
	return &ORL{fs: fs, root: root}
}

func (d *ORL) Name() string    { return config.DatasetORL }
func (d *ORL) Root() string    { return d.root }
func (d *ORL) NumClasses() int { return ORLNumClasses }

func (d *ORL) ClassPath(class int) string {
	return filepath.Join(d.root, subject(class))
}

func (d *ORL) ClassFiles(class int) ([]string, error) {
	if err := checkClass(d, class); err != nil {
		return nil, err
	}
	return utils.GetFiles(d.fs, d.ClassPath(class))
}

// 同じ番号の画像が全被験者にあるため被験者名を前置する
func (d *ORL) DestFilename(class int, filename string) string {
	return subject(class) + "_" + filename
}

func subject(class int) string {
	return fmt.Sprintf("s%d", class+1)
}
