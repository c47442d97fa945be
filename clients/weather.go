package clients

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"lunch-roulette-api/recommend"

	"github.com/go-resty/resty/v2"
)

// Forecast API category codes for the observations we read.
const (
	categorySky           = "SKY" // 1 clear, 3 mostly cloudy, 4 overcast
	categoryPrecipitation = "PTY" // see precipitation code comments below
	categoryTemperature   = "T1H" // air temperature, °C
)

// Temperature cutoffs for the hot/cold buckets.
const (
	hotTempC  = 28.0
	coldTempC = 5.0
)

const skyClear = 1

type forecastItem struct {
	Category  string `json:"category"`
	ObsrValue string `json:"obsrValue"`
}

type forecastResponse struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			Items struct {
				Item []forecastItem `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

// WeatherClient reads the short-term forecast API and discretizes the
// observation into the six condition tags the scorer understands.
type WeatherClient struct {
	http   *resty.Client
	apiKey string
}

func NewWeatherClient(baseURL, apiKey string) *WeatherClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second)
	return &WeatherClient{http: c, apiKey: apiKey}
}

// Current fetches the latest observation near a coordinate and returns the
// discretized snapshot.
func (w *WeatherClient) Current(ctx context.Context, lat, lng float64) (*recommend.WeatherSnapshot, error) {
	var out forecastResponse
	resp, err := w.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"serviceKey": w.apiKey,
			"dataType":   "JSON",
			"lat":        strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":        strconv.FormatFloat(lng, 'f', -1, 64),
		}).
		SetResult(&out).
		Get("/getUltraSrtNcst")
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather: status %d", resp.StatusCode())
	}
	if code := out.Response.Header.ResultCode; code != "" && code != "00" {
		return nil, fmt.Errorf("weather: %s (%s)", out.Response.Header.ResultMsg, code)
	}

	sky, precipitation, temp := 0, 0, 0.0
	for _, item := range out.Response.Body.Items.Item {
		switch item.Category {
		case categorySky:
			sky, _ = strconv.Atoi(item.ObsrValue)
		case categoryPrecipitation:
			precipitation, _ = strconv.Atoi(item.ObsrValue)
		case categoryTemperature:
			temp, _ = strconv.ParseFloat(item.ObsrValue, 64)
		}
	}

	condition := Discretize(sky, precipitation, temp)
	return &recommend.WeatherSnapshot{
		Condition:   condition,
		TempC:       temp,
		Description: conditionDescriptions[condition],
		Foods:       conditionFoods[condition],
	}, nil
}

// Discretize folds the raw observation codes into one condition tag.
// Precipitation wins over everything, then temperature extremes, then sky.
//
// Precipitation codes: 0 none, 1 rain, 2 rain/snow mix, 3 snow, 4 shower,
// 5 drizzle, 6 drizzle/snow mix, 7 snow flurry.
func Discretize(sky, precipitation int, tempC float64) recommend.Condition {
	switch precipitation {
	case 1, 2, 4, 5, 6:
		return recommend.ConditionRain
	case 3, 7:
		return recommend.ConditionSnow
	}
	switch {
	case tempC >= hotTempC:
		return recommend.ConditionHot
	case tempC <= coldTempC:
		return recommend.ConditionCold
	case sky == skyClear:
		return recommend.ConditionClear
	}
	return recommend.ConditionCloudy
}

var conditionDescriptions = map[recommend.Condition]string{
	recommend.ConditionClear:  "맑음",
	recommend.ConditionCloudy: "흐림",
	recommend.ConditionRain:   "비",
	recommend.ConditionSnow:   "눈",
	recommend.ConditionHot:    "무더위",
	recommend.ConditionCold:   "한파",
}

// conditionFoods are the suggestion chips shown next to the weather card.
var conditionFoods = map[recommend.Condition][]string{
	recommend.ConditionClear:  {"샐러드", "샌드위치", "브런치"},
	recommend.ConditionCloudy: {"파스타", "돈까스", "버거"},
	recommend.ConditionRain:   {"국밥", "칼국수", "전"},
	recommend.ConditionSnow:   {"전골", "우동", "어묵탕"},
	recommend.ConditionHot:    {"냉면", "초밥", "샐러드"},
	recommend.ConditionCold:   {"국밥", "찌개", "탕"},
}
