package utils

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ResetDirectory はディレクトリを削除してから作り直す
//
// 既存の内容は確認なしで全て消える。pathがディレクトリ以外で存在する場合は
// 作成に失敗しエラーを返す。
func ResetDirectory(fs afero.Fs, path string, perm os.FileMode) error {
	isDir, err := afero.IsDir(fs, path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to stat %q", path)
	}
	if isDir {
		if err := fs.RemoveAll(path); err != nil {
			return errors.Wrapf(err, "failed to remove %q", path)
		}
	}
	if err := fs.Mkdir(path, perm); err != nil {
		return errors.Wrapf(err, "failed to create %q", path)
	}
	return nil
}

// GetFiles はディレクトリ直下のファイル名を取得
//
// サブディレクトリと隠しファイルは除外する。順序はディレクトリの列挙順。
func GetFiles(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// .DS_Store など
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
