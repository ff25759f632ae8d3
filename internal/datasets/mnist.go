package datasets

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"

	"create-sets/internal/config"
	"create-sets/internal/utils"
)

// MNISTRoot はMNIST画像のデフォルトの場所
const MNISTRoot = "datasets/mnist"

// MNISTNumClasses は数字の種類
const MNISTNumClasses = 10

// MNIST は数字ごとのディレクトリ (0 .. 9) に展開したMNIST画像
type MNIST struct {
	fs   afero.Fs
	root string
}

var _ Descriptor = (*MNIST)(nil)

// NewMNIST は新しいMNISTを作成
func NewMNIST(fs afero.Fs, root string) *MNIST {
	return &MNIST{fs: fs, root: root}
}

func (d *MNIST) Name() string    { return config.DatasetMNIST }
func (d *MNIST) Root() string    { return d.root }
func (d *MNIST) NumClasses() int { return MNISTNumClasses }

func (d *MNIST) ClassPath(class int) string {
	return filepath.Join(d.root, strconv.Itoa(class))
}

func (d *MNIST) ClassFiles(class int) ([]string, error) {
	if err := checkClass(d, class); err != nil {
		return nil, err
	}
	return utils.GetFiles(d.fs, d.ClassPath(class))
}

func (d *MNIST) DestFilename(class int, filename string) string {
	return strconv.Itoa(class) + "_" + filename
}
