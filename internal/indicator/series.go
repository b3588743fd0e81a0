// Package indicator는 캔들 종가 시퀀스에 대한 기술적 지표 계산을 제공합니다.
//
// 모든 지표 함수는 입력과 길이가 같은 Series를 반환하며, 워밍업 구간이나
// 데이터 부족 구간은 빈 슬롯(Valid == false)으로 표시합니다. 에러를 반환하지
// 않으며, 비정상적인 수치 입력(NaN, Inf)은 검증하지 않고 그대로 계산에
// 반영합니다.
package indicator

import "encoding/json"

// Value는 지표 결과 시퀀스의 한 슬롯을 표현합니다.
// Valid가 false이면 해당 인덱스에서 아직 값을 계산할 수 없음을 의미합니다.
// RSI 100이나 표준편차 0인 볼린저 밴드 같은 정상 값과 구분해야 하므로
// 0이나 NaN 같은 센티널 값 대신 명시적 플래그를 사용합니다.
type Value struct {
	Num   float64
	Valid bool
}

// Present는 계산된 값을 담은 슬롯을 생성합니다
func Present(num float64) Value {
	return Value{Num: num, Valid: true}
}

// MarshalJSON은 빈 슬롯을 null로 직렬화합니다.
// 차트 쪽에서 null을 만나면 해당 구간을 비워서 그려야 합니다.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Num)
}

// Series는 입력 시퀀스와 길이가 같은 지표 결과 시퀀스입니다.
// 인덱스 i의 슬롯은 입력 인덱스 i의 캔들에 대응합니다.
type Series []Value

// NewSeries는 전 구간이 빈 슬롯인 Series를 생성합니다
func NewSeries(length int) Series {
	return make(Series, length)
}

// Compact는 유효한 슬롯만 모은 조밀한 값 시퀀스와,
// 각 값이 원래 있던 인덱스 목록을 함께 반환합니다.
// 희소한 시퀀스에 다시 지표를 적용할 때(예: MACD 시그널 라인) 사용합니다.
func (s Series) Compact() ([]float64, []int) {
	dense := make([]float64, 0, len(s))
	indices := make([]int, 0, len(s))
	for i, v := range s {
		if v.Valid {
			dense = append(dense, v.Num)
			indices = append(indices, i)
		}
	}
	return dense, indices
}

// ValidCount는 유효한 슬롯의 개수를 반환합니다
func (s Series) ValidCount() int {
	count := 0
	for _, v := range s {
		if v.Valid {
			count++
		}
	}
	return count
}

// FirstValidIndex는 첫 유효 슬롯의 인덱스를 반환합니다.
// 유효한 슬롯이 없으면 -1을 반환합니다.
func (s Series) FirstValidIndex() int {
	for i, v := range s {
		if v.Valid {
			return i
		}
	}
	return -1
}
