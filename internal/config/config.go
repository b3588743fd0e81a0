package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/assist-by/prism/internal/indicator"
)

type Config struct {
	// 지표 파라미터 설정
	Indicator struct {
		RSIPeriod        int     `envconfig:"RSI_PERIOD" default:"14"`
		MACDShortPeriod  int     `envconfig:"MACD_SHORT_PERIOD" default:"12"`
		MACDLongPeriod   int     `envconfig:"MACD_LONG_PERIOD" default:"26"`
		MACDSignalPeriod int     `envconfig:"MACD_SIGNAL_PERIOD" default:"9"`
		EMAShortPeriod   int     `envconfig:"EMA_SHORT_PERIOD" default:"20"`
		EMAMidPeriod     int     `envconfig:"EMA_MID_PERIOD" default:"50"`
		EMALongPeriod    int     `envconfig:"EMA_LONG_PERIOD" default:"200"`
		BollingerPeriod  int     `envconfig:"BOLLINGER_PERIOD" default:"20"`
		BollingerStdDev  float64 `envconfig:"BOLLINGER_STDDEV" default:"2.0"`
	}
}

// ValidateConfig는 설정이 유효한지 확인합니다.
// 지표 함수 자체는 잘못된 기간을 빈 시퀀스로 처리하므로,
// 사람이 입력한 값에 대한 검증은 이 경계에서 수행합니다.
func ValidateConfig(cfg *Config) error {
	ind := cfg.Indicator

	periods := []struct {
		name  string
		value int
	}{
		{"RSI_PERIOD", ind.RSIPeriod},
		{"MACD_SHORT_PERIOD", ind.MACDShortPeriod},
		{"MACD_LONG_PERIOD", ind.MACDLongPeriod},
		{"MACD_SIGNAL_PERIOD", ind.MACDSignalPeriod},
		{"EMA_SHORT_PERIOD", ind.EMAShortPeriod},
		{"EMA_MID_PERIOD", ind.EMAMidPeriod},
		{"EMA_LONG_PERIOD", ind.EMALongPeriod},
		{"BOLLINGER_PERIOD", ind.BollingerPeriod},
	}
	for _, p := range periods {
		if p.value < 1 {
			return fmt.Errorf("%s은(는) 1 이상이어야 합니다: %d", p.name, p.value)
		}
	}

	if ind.MACDLongPeriod <= ind.MACDShortPeriod {
		return fmt.Errorf("MACD 장기 기간은 단기 기간보다 커야 합니다: %d <= %d",
			ind.MACDLongPeriod, ind.MACDShortPeriod)
	}

	if ind.BollingerStdDev <= 0 {
		return fmt.Errorf("볼린저 표준편차 배수는 0보다 커야 합니다: %f", ind.BollingerStdDev)
	}

	return nil
}

// LoadConfig는 환경변수에서 설정을 로드합니다.
func LoadConfig() (*Config, error) {
	// .env 파일이 있으면 로드 (없으면 환경변수만 사용)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf(".env 파일 로드 실패: %w", err)
	}

	var cfg Config
	// 환경변수를 구조체로 파싱
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("환경변수 처리 실패: %w", err)
	}

	// 설정값 검증
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("설정값 검증 실패: %w", err)
	}

	return &cfg, nil
}

// Options는 설정을 지표 계산 옵션으로 변환합니다
func (cfg *Config) Options() indicator.Options {
	ind := cfg.Indicator
	return indicator.Options{
		RSI: indicator.RSIOption{Period: ind.RSIPeriod},
		MACD: indicator.MACDOption{
			ShortPeriod:  ind.MACDShortPeriod,
			LongPeriod:   ind.MACDLongPeriod,
			SignalPeriod: ind.MACDSignalPeriod,
		},
		EMAShortPeriod: ind.EMAShortPeriod,
		EMAMidPeriod:   ind.EMAMidPeriod,
		EMALongPeriod:  ind.EMALongPeriod,
		Bollinger: indicator.BollingerOption{
			Period:           ind.BollingerPeriod,
			StdDevMultiplier: ind.BollingerStdDev,
		},
	}
}
