package indicator

import "math"

// BollingerOption은 볼린저 밴드 계산에 필요한 옵션을 정의합니다
type BollingerOption struct {
	Period           int     // 이동 평균 기간
	StdDevMultiplier float64 // 표준편차 배수
}

// DefaultBollingerOption은 기본 볼린저 밴드 옵션(20, 2.0)을 반환합니다
func DefaultBollingerOption() BollingerOption {
	return BollingerOption{Period: 20, StdDevMultiplier: 2.0}
}

// BollingerSeries는 볼린저 밴드 계산 결과의 세 시퀀스입니다.
// 모두 입력과 길이가 같으며, 유효한 인덱스에서는 항상
// Lower ≤ Middle ≤ Upper가 성립합니다 (표준편차가 0이면 모두 같음).
type BollingerSeries struct {
	Upper  Series // 상단 밴드
	Middle Series // 중간 밴드 (SMA)
	Lower  Series // 하단 밴드
}

// Bollinger는 볼린저 밴드를 계산합니다.
//
// 인덱스 i에서 직전 Period개 구간 values[i-Period+1..i]의 산술 평균이
// 중간 밴드, 같은 구간의 모집단 표준편차(Period로 나눔)에 배수를 곱해
// 더하고 뺀 값이 상단/하단 밴드입니다. Period-1 이전 인덱스는 빈 슬롯이며,
// 데이터가 Period보다 짧거나 Period가 1 미만이면 전 구간이 빈 슬롯입니다.
func Bollinger(values []float64, opt BollingerOption) BollingerSeries {
	n := len(values)
	out := BollingerSeries{
		Upper:  NewSeries(n),
		Middle: NewSeries(n),
		Lower:  NewSeries(n),
	}

	p := opt.Period
	if p < 1 {
		return out
	}

	for i := p - 1; i < n; i++ {
		// 직전 p개 구간의 산술 평균
		var sum float64
		for j := i - p + 1; j <= i; j++ {
			sum += values[j]
		}
		mean := sum / float64(p)

		// 모집단 표준편차 (p-1이 아닌 p로 나눔)
		var sumSq float64
		for j := i - p + 1; j <= i; j++ {
			diff := values[j] - mean
			sumSq += diff * diff
		}
		std := math.Sqrt(sumSq / float64(p))

		out.Middle[i] = Present(mean)
		out.Upper[i] = Present(mean + opt.StdDevMultiplier*std)
		out.Lower[i] = Present(mean - opt.StdDevMultiplier*std)
	}

	return out
}
