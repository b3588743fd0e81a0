package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMACD(t *testing.T) {
	t.Run("MACD 라인은 두 EMA의 차", func(t *testing.T) {
		closes := generateTestCloses()
		opt := DefaultMACDOption()
		results := MACD(closes, opt)

		shortEMA := EMA(closes, EMAOption{Period: opt.ShortPeriod})
		longEMA := EMA(closes, EMAOption{Period: opt.LongPeriod})

		require.Len(t, results.Line, len(closes))
		for i := range closes {
			if !results.Line[i].Valid {
				continue
			}
			// 유효하다면 두 EMA 모두 유효해야 함
			require.True(t, shortEMA[i].Valid, "인덱스 %d", i)
			require.True(t, longEMA[i].Valid, "인덱스 %d", i)
			assert.InDelta(t, shortEMA[i].Num-longEMA[i].Num, results.Line[i].Num, 1e-9)
		}

		// 장기 EMA 워밍업이 끝나는 지점부터 유효
		assert.Equal(t, opt.LongPeriod-1, results.Line.FirstValidIndex())
	})

	t.Run("시그널 라인 워밍업은 유효 표본 개수 기준", func(t *testing.T) {
		closes := generateTestCloses()[:40]
		results := MACD(closes, DefaultMACDOption())

		// MACD 라인: 인덱스 25부터 유효 (26-1)
		// 시그널 라인: 유효 표본 9개가 모인 인덱스 25+8 = 33부터 유효
		assert.Equal(t, 25, results.Line.FirstValidIndex())
		assert.Equal(t, 33, results.Signal.FirstValidIndex())
		assert.Equal(t, 33, results.Histogram.FirstValidIndex())
		assert.Equal(t, 40-33, results.Signal.ValidCount())
	})

	t.Run("시그널 라인은 압축한 MACD 라인의 EMA와 일치", func(t *testing.T) {
		closes := generateTestCloses()
		opt := DefaultMACDOption()
		results := MACD(closes, opt)

		dense, indices := results.Line.Compact()
		denseSignal := EMA(dense, EMAOption{Period: opt.SignalPeriod})

		for j, v := range denseSignal {
			orig := results.Signal[indices[j]]
			assert.Equal(t, v.Valid, orig.Valid, "압축 인덱스 %d", j)
			if v.Valid {
				assert.InDelta(t, v.Num, orig.Num, 1e-9)
			}
		}
	})

	t.Run("히스토그램은 MACD 라인과 시그널 라인의 차", func(t *testing.T) {
		closes := generateTestCloses()
		results := MACD(closes, DefaultMACDOption())

		for i := range closes {
			if !results.Histogram[i].Valid {
				continue
			}
			require.True(t, results.Line[i].Valid)
			require.True(t, results.Signal[i].Valid)
			assert.InDelta(t, results.Line[i].Num-results.Signal[i].Num,
				results.Histogram[i].Num, 1e-9)
		}
	})

	t.Run("데이터가 짧으면 세 시퀀스 모두 빈 슬롯", func(t *testing.T) {
		closes := generateIncreasingCloses(10)
		results := MACD(closes, DefaultMACDOption())

		require.Len(t, results.Line, 10)
		require.Len(t, results.Signal, 10)
		require.Len(t, results.Histogram, 10)
		assert.Equal(t, 0, results.Line.ValidCount())
		assert.Equal(t, 0, results.Signal.ValidCount())
		assert.Equal(t, 0, results.Histogram.ValidCount())
	})

	t.Run("시그널 기간 전까지는 시그널만 빈 슬롯", func(t *testing.T) {
		// MACD 라인은 있지만 시그널 워밍업(표본 9개)은 부족한 길이
		closes := generateTestCloses()[:30]
		results := MACD(closes, DefaultMACDOption())

		assert.Equal(t, 5, results.Line.ValidCount()) // 인덱스 25~29
		assert.Equal(t, 0, results.Signal.ValidCount())
		assert.Equal(t, 0, results.Histogram.ValidCount())
	})
}
