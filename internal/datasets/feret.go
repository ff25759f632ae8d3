package datasets

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"create-sets/internal/config"
	"create-sets/internal/utils"
)

// FERETRoot はFERET画像のデフォルトの場所
const FERETRoot = "datasets/feret"

// FERETSubjectLen はファイル名先頭の被験者IDの桁数 (例: 00001fa010_930831.pgm)
const FERETSubjectLen = 5

// FERET は全画像を1つのディレクトリに置いたFERET顔画像データセット
//
// クラスはファイル名先頭の被験者IDで決まり、Open時に列挙する。
type FERET struct {
	fs       afero.Fs
	root     string
	subjects []string            // クラス番号 -> 被験者ID (昇順)
	files    map[string][]string // 被験者ID -> ファイル名
}

var _ Descriptor = (*FERET)(nil)

// NewFERET はrootを走査して新しいFERETを作成
func NewFERET(fs afero.Fs, root string) (*FERET, error) {
	names, err := utils.GetFiles(fs, root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list FERET images in %q", root)
	}

	d := &FERET{
		fs:    fs,
		root:  root,
		files: make(map[string][]string),
	}
	for _, name := range names {
		if len(name) <= FERETSubjectLen {
			continue
		}
		id := name[:FERETSubjectLen]
		if _, ok := d.files[id]; !ok {
			d.subjects = append(d.subjects, id)
		}
		d.files[id] = append(d.files[id], name)
	}
	sort.Strings(d.subjects)

	return d, nil
}

func (d *FERET) Name() string    { return config.DatasetFERET }
func (d *FERET) Root() string    { return d.root }
func (d *FERET) NumClasses() int { return len(d.subjects) }

func (d *FERET) ClassPath(int) string {
	return d.root
}

func (d *FERET) ClassFiles(class int) ([]string, error) {
	if err := checkClass(d, class); err != nil {
		return nil, err
	}
	files := d.files[d.subjects[class]]
	out := make([]string, len(files))
	copy(out, files)
	return out, nil
}

// ファイル名に被験者IDが含まれるためそのまま使う
func (d *FERET) DestFilename(_ int, filename string) string {
	return filename
}
