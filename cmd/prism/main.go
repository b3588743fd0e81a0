package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/bitly/go-simplejson"

	"github.com/assist-by/prism/internal/config"
	"github.com/assist-by/prism/internal/domain"
	"github.com/assist-by/prism/internal/indicator"
)

func main() {
	// 명령줄 플래그 정의
	inputFlag := flag.String("input", "-", "캔들 JSON 파일 경로 (-이면 표준 입력)")
	prettyFlag := flag.Bool("pretty", false, "결과 JSON을 들여쓰기해서 출력")

	// 플래그 파싱
	flag.Parse()

	// 로그 설정
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// 입력 읽기
	data, err := readInput(*inputFlag)
	if err != nil {
		log.Fatalf("입력 읽기 실패: %v", err)
	}

	// 캔들 파싱
	candles, err := parseCandles(data)
	if err != nil {
		log.Fatalf("캔들 데이터 파싱 실패: %v", err)
	}
	log.Printf("캔들 %d개 로드, 지표 계산 시작", len(candles))

	// 지표 번들 계산
	bundle := indicator.Compute(candles, cfg.Options())

	// 결과 출력
	var out []byte
	if *prettyFlag {
		out, err = json.MarshalIndent(bundle, "", "  ")
	} else {
		out, err = json.Marshal(bundle)
	}
	if err != nil {
		log.Fatalf("결과 직렬화 실패: %v", err)
	}

	fmt.Println(string(out))
}

// readInput은 파일 또는 표준 입력에서 전체 내용을 읽습니다
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// parseCandles는 캔들 JSON 배열을 파싱합니다.
// 바이낸스 kline 형식([openTime, open, high, ...] 배열)과
// 객체 형식({"openTime": ..., "open": ...}) 둘 다 지원하며,
// 가격 필드는 숫자와 문자열 모두 허용합니다.
func parseCandles(data []byte) (domain.CandleList, error) {
	js, err := simplejson.NewJson(data)
	if err != nil {
		return nil, fmt.Errorf("JSON 파싱 실패: %w", err)
	}

	arr, err := js.Array()
	if err != nil {
		return nil, fmt.Errorf("캔들 배열이 아닙니다: %w", err)
	}

	candles := make(domain.CandleList, len(arr))
	for i := range arr {
		item := js.GetIndex(i)

		// kline 배열 형식: [openTime, open, high, low, close, volume, closeTime, ...]
		if _, err := item.Array(); err == nil {
			candles[i] = domain.Candle{
				OpenTime:  time.UnixMilli(item.GetIndex(0).MustInt64()),
				Open:      floatValue(item.GetIndex(1)),
				High:      floatValue(item.GetIndex(2)),
				Low:       floatValue(item.GetIndex(3)),
				Close:     floatValue(item.GetIndex(4)),
				Volume:    floatValue(item.GetIndex(5)),
				CloseTime: time.UnixMilli(item.GetIndex(6).MustInt64()),
			}
			continue
		}

		// 객체 형식
		candles[i] = domain.Candle{
			OpenTime:  time.UnixMilli(item.Get("openTime").MustInt64()),
			CloseTime: time.UnixMilli(item.Get("closeTime").MustInt64()),
			Open:      floatValue(item.Get("open")),
			High:      floatValue(item.Get("high")),
			Low:       floatValue(item.Get("low")),
			Close:     floatValue(item.Get("close")),
			Volume:    floatValue(item.Get("volume")),
			Symbol:    item.Get("symbol").MustString(),
			Interval:  domain.TimeInterval(item.Get("interval").MustString()),
		}
	}

	return candles, nil
}

// floatValue는 숫자 또는 문자열로 표현된 가격 필드를 float64로 변환합니다
func floatValue(js *simplejson.Json) float64 {
	if f, err := js.Float64(); err == nil {
		return f
	}
	f, _ := strconv.ParseFloat(js.MustString(), 64)
	return f
}
