package indicator

import "github.com/assist-by/prism/internal/domain"

// Options는 번들 계산에 사용하는 전체 지표 파라미터입니다
type Options struct {
	RSI            RSIOption       // RSI 옵션
	MACD           MACDOption      // MACD 옵션
	EMAShortPeriod int             // 단기 EMA 기간
	EMAMidPeriod   int             // 중기 EMA 기간
	EMALongPeriod  int             // 장기 EMA 기간
	Bollinger      BollingerOption // 볼린저 밴드 옵션
}

// DefaultOptions는 차트 오버레이 기본 파라미터를 반환합니다:
// RSI(14), MACD(12,26,9), EMA(20/50/200), 볼린저(20, 2.0)
func DefaultOptions() Options {
	return Options{
		RSI:            DefaultRSIOption(),
		MACD:           DefaultMACDOption(),
		EMAShortPeriod: 20,
		EMAMidPeriod:   50,
		EMALongPeriod:  200,
		Bollinger:      DefaultBollingerOption(),
	}
}

// Bundle은 한 캔들 시퀀스에 대한 전체 지표 계산 결과입니다.
// 열 개의 시퀀스 모두 입력 캔들 목록과 길이가 같고 인덱스로 1:1 대응하며,
// 빈 슬롯은 JSON에서 null로 직렬화됩니다.
type Bundle struct {
	RSI           Series `json:"rsi"`
	MACD          Series `json:"macd"`
	MACDSignal    Series `json:"macdSignal"`
	MACDHistogram Series `json:"macdHistogram"`
	EMA20         Series `json:"ema20"`
	EMA50         Series `json:"ema50"`
	EMA200        Series `json:"ema200"`
	BBUpper       Series `json:"bbUpper"`
	BBMiddle      Series `json:"bbMiddle"`
	BBLower       Series `json:"bbLower"`
}

// Compute는 캔들 시퀀스로부터 전체 지표 번들을 계산합니다.
//
// 종가 시퀀스를 한 번 추출한 뒤 각 지표를 독립적으로 계산합니다.
// 상태를 보관하지 않는 순수 계산이므로 같은 입력에 대해 항상 같은
// 결과를 반환하며, 서로 다른 심볼에 대해 동시에 호출해도 안전합니다.
func Compute(candles domain.CandleList, opt Options) Bundle {
	closes := candles.ClosePrices()

	macd := MACD(closes, opt.MACD)
	bb := Bollinger(closes, opt.Bollinger)

	return Bundle{
		RSI:           RSI(closes, opt.RSI),
		MACD:          macd.Line,
		MACDSignal:    macd.Signal,
		MACDHistogram: macd.Histogram,
		EMA20:         EMA(closes, EMAOption{Period: opt.EMAShortPeriod}),
		EMA50:         EMA(closes, EMAOption{Period: opt.EMAMidPeriod}),
		EMA200:        EMA(closes, EMAOption{Period: opt.EMALongPeriod}),
		BBUpper:       bb.Upper,
		BBMiddle:      bb.Middle,
		BBLower:       bb.Lower,
	}
}

// ComputeDefault는 기본 파라미터로 지표 번들을 계산합니다
func ComputeDefault(candles domain.CandleList) Bundle {
	return Compute(candles, DefaultOptions())
}
