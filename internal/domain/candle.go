package domain

import "time"

// Candle은 캔들 데이터를 표현합니다
type Candle struct {
	OpenTime  time.Time    // 캔들 시작 시간
	CloseTime time.Time    // 캔들 종료 시간
	Open      float64      // 시가
	High      float64      // 고가
	Low       float64      // 저가
	Close     float64      // 종가
	Volume    float64      // 거래량
	Symbol    string       // 심볼 (예: BTCUSDT)
	Interval  TimeInterval // 시간 간격 (예: 15m, 1h)
}

// CandleList는 캔들 데이터 목록입니다.
// OpenTime 오름차순으로 정렬되어 있다고 가정하며, 재정렬하지 않습니다.
type CandleList []Candle

// ClosePrices는 종가만 추출한 시퀀스를 반환합니다.
// 순서와 길이는 원본 캔들 목록과 동일합니다.
func (cl CandleList) ClosePrices() []float64 {
	closes := make([]float64, len(cl))
	for i, candle := range cl {
		closes[i] = candle.Close
	}
	return closes
}

// GetLastCandle은 가장 최근 캔들을 반환합니다
func (cl CandleList) GetLastCandle() (Candle, bool) {
	if len(cl) == 0 {
		return Candle{}, false
	}
	return cl[len(cl)-1], true
}

// GetPriceAtIndex는 특정 인덱스의 종가를 반환합니다
func (cl CandleList) GetPriceAtIndex(index int) (float64, bool) {
	if index < 0 || index >= len(cl) {
		return 0, false
	}
	return cl[index].Close, true
}
