package indicator

// EMAOption은 EMA 계산에 필요한 옵션을 정의합니다
type EMAOption struct {
	Period int // 기간
}

// EMA는 지수이동평균을 계산합니다.
//
// 첫 유효 값은 인덱스 Period-1에서 앞 Period개의 단순 평균(SMA)으로 시드하고,
// 이후 구간은 승수 k = 2/(Period+1)로 재귀 계산합니다.
// Period가 1이면 k == 1이 되어 원본 값이 그대로 나옵니다.
// 데이터가 Period보다 짧거나 Period가 1 미만이면 전 구간이 빈 슬롯입니다.
func EMA(values []float64, opt EMAOption) Series {
	results := NewSeries(len(values))

	p := opt.Period
	if p < 1 || len(values) < p {
		return results
	}

	// 초기 SMA 계산
	var sma float64
	for i := 0; i < p; i++ {
		sma += values[i]
	}
	sma /= float64(p)

	// 첫 번째 EMA는 SMA 값으로 설정
	results[p-1] = Present(sma)

	// EMA 계산을 위한 승수
	multiplier := 2.0 / float64(p+1)

	// EMA = 이전 EMA + (현재가 - 이전 EMA) × 승수
	for i := p; i < len(values); i++ {
		ema := (values[i]-results[i-1].Num)*multiplier + results[i-1].Num
		results[i] = Present(ema)
	}

	return results
}
