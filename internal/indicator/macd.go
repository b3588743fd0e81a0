package indicator

// MACDOption은 MACD 계산에 필요한 옵션을 정의합니다
type MACDOption struct {
	ShortPeriod  int // 단기 EMA 기간
	LongPeriod   int // 장기 EMA 기간
	SignalPeriod int // 시그널 라인 기간
}

// DefaultMACDOption은 기본 MACD 옵션(12, 26, 9)을 반환합니다
func DefaultMACDOption() MACDOption {
	return MACDOption{ShortPeriod: 12, LongPeriod: 26, SignalPeriod: 9}
}

// MACDSeries는 MACD 계산 결과의 세 시퀀스입니다.
// 모두 입력과 길이가 같습니다.
type MACDSeries struct {
	Line      Series // MACD 라인 (단기 EMA - 장기 EMA)
	Signal    Series // 시그널 라인 (MACD 라인의 EMA)
	Histogram Series // 히스토그램 (MACD 라인 - 시그널 라인)
}

// MACD는 MACD(Moving Average Convergence Divergence) 지표를 계산합니다.
//
// MACD 라인은 단기/장기 EMA가 모두 유효한 인덱스에서만 유효합니다.
// 시그널 라인은 희소한 MACD 라인을 그대로 EMA에 넣지 않고, 유효 값만
// 압축(compact)한 조밀 시퀀스에 EMA를 적용한 뒤 원래 인덱스로
// 되돌립니다(scatter). 그래야 시그널 라인의 워밍업 위치와 승수가
// 전체 캔들 개수가 아닌 유효한 MACD 표본 개수를 기준으로 잡힙니다.
func MACD(values []float64, opt MACDOption) MACDSeries {
	n := len(values)
	out := MACDSeries{
		Line:      NewSeries(n),
		Signal:    NewSeries(n),
		Histogram: NewSeries(n),
	}

	// 단기/장기 EMA 계산
	shortEMA := EMA(values, EMAOption{Period: opt.ShortPeriod})
	longEMA := EMA(values, EMAOption{Period: opt.LongPeriod})

	// MACD 라인 계산 (단기 EMA - 장기 EMA)
	for i := 0; i < n; i++ {
		if shortEMA[i].Valid && longEMA[i].Valid {
			out.Line[i] = Present(shortEMA[i].Num - longEMA[i].Num)
		}
	}

	// 시그널 라인 계산: compact → EMA → scatter
	dense, indices := out.Line.Compact()
	denseSignal := EMA(dense, EMAOption{Period: opt.SignalPeriod})
	for j, v := range denseSignal {
		if v.Valid {
			out.Signal[indices[j]] = v
		}
	}

	// 히스토그램 계산 (MACD 라인 - 시그널 라인)
	for i := 0; i < n; i++ {
		if out.Line[i].Valid && out.Signal[i].Valid {
			out.Histogram[i] = Present(out.Line[i].Num - out.Signal[i].Num)
		}
	}

	return out
}
