package config

import "github.com/pkg/errors"

// 設定エラー
var (
	// ErrUsage はコマンドライン引数が不正な場合のエラー
	ErrUsage = errors.New("invalid usage")

	// ErrPercentSum は教師データとテストデータの割合の合計が100でない場合のエラー
	ErrPercentSum = errors.New("--train and --test must sum to 100%")
)

// UsageError は引数エラーの詳細を保持する。errors.Is(err, ErrUsage) が真になる。
type UsageError struct {
	msg string
}

// NewUsageError は新しい引数エラーを作成
func NewUsageError(msg string) *UsageError {
	return &UsageError{msg: msg}
}

func (e *UsageError) Error() string {
	return e.msg
}

// Is は ErrUsage との比較を許可する
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// IsUsage はerrが引数エラーか判定
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}
