package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBollinger(t *testing.T) {
	t.Run("워밍업 구간과 밴드 순서", func(t *testing.T) {
		closes := generateTestCloses()
		results := Bollinger(closes, DefaultBollingerOption())

		require.Len(t, results.Upper, len(closes))
		require.Len(t, results.Middle, len(closes))
		require.Len(t, results.Lower, len(closes))

		assert.Equal(t, 19, results.Middle.FirstValidIndex())

		for i := range closes {
			require.Equal(t, results.Middle[i].Valid, results.Upper[i].Valid)
			require.Equal(t, results.Middle[i].Valid, results.Lower[i].Valid)
			if !results.Middle[i].Valid {
				continue
			}
			assert.LessOrEqual(t, results.Lower[i].Num, results.Middle[i].Num, "인덱스 %d", i)
			assert.LessOrEqual(t, results.Middle[i].Num, results.Upper[i].Num, "인덱스 %d", i)
		}
	})

	t.Run("변동 없는 구간은 세 밴드가 일치", func(t *testing.T) {
		closes := make([]float64, 15)
		for i := range closes {
			closes[i] = 10
		}
		results := Bollinger(closes, BollingerOption{Period: 14, StdDevMultiplier: 2})

		require.True(t, results.Middle[13].Valid)
		assert.InDelta(t, 10.0, results.Middle[13].Num, 1e-9)
		assert.InDelta(t, 10.0, results.Upper[13].Num, 1e-9)
		assert.InDelta(t, 10.0, results.Lower[13].Num, 1e-9)
	})

	t.Run("모집단 표준편차 수계산 검증", func(t *testing.T) {
		// 기간 3, 구간 [1,2,3]: 평균 2, 분산 = (1+0+1)/3 = 2/3
		values := []float64{1, 2, 3, 4}
		results := Bollinger(values, BollingerOption{Period: 3, StdDevMultiplier: 2})

		std := math.Sqrt(2.0 / 3.0)

		require.True(t, results.Middle[2].Valid)
		assert.InDelta(t, 2.0, results.Middle[2].Num, 1e-9)
		assert.InDelta(t, 2.0+2*std, results.Upper[2].Num, 1e-9)
		assert.InDelta(t, 2.0-2*std, results.Lower[2].Num, 1e-9)

		// 인덱스 3의 구간은 [2,3,4]: 평균 3, 분산 동일
		require.True(t, results.Middle[3].Valid)
		assert.InDelta(t, 3.0, results.Middle[3].Num, 1e-9)
		assert.InDelta(t, 3.0+2*std, results.Upper[3].Num, 1e-9)
	})

	t.Run("데이터가 기간보다 짧으면 전 구간 빈 슬롯", func(t *testing.T) {
		results := Bollinger([]float64{1, 2, 3}, DefaultBollingerOption())

		require.Len(t, results.Middle, 3)
		assert.Equal(t, 0, results.Middle.ValidCount())
		assert.Equal(t, 0, results.Upper.ValidCount())
		assert.Equal(t, 0, results.Lower.ValidCount())
	})
}
