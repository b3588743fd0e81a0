package indicator

// 테스트용 종가 시퀀스 생성: 상승 → 급락 → 횡보 → 하락 → 반등 구간을
// 반복해 충분한 길이(250개)를 만듭니다.
func generateTestCloses() []float64 {
	pattern := []float64{
		// 상승 구간
		103, 106, 108, 110, 113, 114, 116, 117, 119, 120,
		// 급락 구간
		116, 113, 109, 106, 103,
		// 횡보 구간
		105, 104, 106, 105, 104,
		// 추가 하락 구간
		101, 99, 97, 95, 93, 91,
		// 반등 구간
		95, 97, 99, 101, 103, 105, 107, 109, 111,
	}

	closes := make([]float64, 0, 250)
	for len(closes) < 250 {
		for _, p := range pattern {
			if len(closes) >= 250 {
				break
			}
			closes = append(closes, p)
		}
	}
	return closes
}

// 일정 간격으로 증가하는 종가 시퀀스 생성
func generateIncreasingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	return closes
}
