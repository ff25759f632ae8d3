package processor

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// CopyFile は単一ファイルをコピー
//
// 内容とパーミッションをコピーする。dstが既にあれば上書きする。
func CopyFile(fs afero.Fs, src, dst string) error {
	srcFile, err := fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open %q", src)
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return errors.Wrapf(err, "failed to stat %q", src)
	}

	dstFile, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "failed to create %q", dst)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Wrapf(err, "failed to copy %q to %q", src, dst)
	}
	if err := dstFile.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %q", dst)
	}
	return nil
}
