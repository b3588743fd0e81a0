package indicator

// RSIOption은 RSI 계산에 필요한 옵션을 정의합니다
type RSIOption struct {
	Period int // RSI 계산 기간
}

// DefaultRSIOption은 기본 RSI 옵션(14)을 반환합니다
func DefaultRSIOption() RSIOption {
	return RSIOption{Period: 14}
}

// RSI는 Wilder 스무딩 방식의 Relative Strength Index를 계산합니다.
//
// 첫 유효 값은 인덱스 Period에 위치하며, 앞 Period개의 변동폭 평균으로
// 시드합니다. 데이터가 Period+1개 미만이거나 Period가 1 미만이면
// 전 구간이 빈 슬롯입니다. 유효한 값은 항상 [0, 100] 범위입니다.
func RSI(values []float64, opt RSIOption) Series {
	results := NewSeries(len(values))

	p := opt.Period
	if p < 1 || len(values) < p+1 {
		return results
	}

	// ---------- 1. 첫 p개의 변동 Δ 합산 (SMA 시드) --------------------
	sumGain, sumLoss := 0.0, 0.0
	for i := 1; i <= p; i++ {
		delta := values[i] - values[i-1]
		if delta > 0 {
			sumGain += delta
		} else {
			sumLoss += -delta
		}
	}
	avgGain, avgLoss := sumGain/float64(p), sumLoss/float64(p)
	results[p] = Present(rsiValue(avgGain, avgLoss))

	// ---------- 2. 이후 구간 Wilder 스무딩 ----------------------------
	for i := p + 1; i < len(values); i++ {
		delta := values[i] - values[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}

		avgGain = (avgGain*float64(p-1) + gain) / float64(p)
		avgLoss = (avgLoss*float64(p-1) + loss) / float64(p)
		results[i] = Present(rsiValue(avgGain, avgLoss))
	}

	return results
}

// rsiValue는 평균 이득/손실로부터 RSI 값을 계산합니다.
// avgLoss가 0이면(상승만 있는 구간) 100을 반환합니다.
// 무한대 비율을 만들지 않기 위한 정책이며, 변동이 전혀 없는 구간도 포함됩니다.
func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
