package processor

import "math/rand"

// Split はクラス内のファイル番号を教師データとテストデータに分けたもの
type Split struct {
	Train []int
	Test  []int
}

// Partition はn件を教師データとテストデータにランダムに分割
//
// 教師データの件数は n*trainPercent/100 (切り捨て)、残りは全てテストデータ。
// 2つの集合は互いに素で、合わせると 0..n-1 になる。
func Partition(n, trainPercent int, rng *rand.Rand) Split {
	numTrain := n * trainPercent / 100
	samples := rng.Perm(n)
	return Split{
		Train: samples[:numTrain],
		Test:  samples[numTrain:],
	}
}

// NewRand はseedで初期化した乱数生成器を返す
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
