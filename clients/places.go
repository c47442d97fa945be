package clients

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lunch-roulette-api/recommend"

	"github.com/go-resty/resty/v2"
)

// restaurantCategoryGroup is the place-search category code for restaurants.
const restaurantCategoryGroup = "FD6"

const defaultPageSize = 15

// placeDocument mirrors one document of the local-search response.
type placeDocument struct {
	ID                string `json:"id"`
	PlaceName         string `json:"place_name"`
	CategoryName      string `json:"category_name"`
	AddressName       string `json:"address_name"`
	RoadAddressName   string `json:"road_address_name"`
	Phone             string `json:"phone"`
	PlaceURL          string `json:"place_url"`
	CategoryGroupCode string `json:"category_group_code"`
	Distance          string `json:"distance"` // meters, empty when no origin given
	X                 string `json:"x"`        // longitude
	Y                 string `json:"y"`        // latitude
}

type placeSearchResponse struct {
	Documents []placeDocument `json:"documents"`
	Meta      struct {
		TotalCount    int  `json:"total_count"`
		PageableCount int  `json:"pageable_count"`
		IsEnd         bool `json:"is_end"`
	} `json:"meta"`
}

// PlacesClient searches restaurants around a coordinate via the map
// provider's local-search REST API.
type PlacesClient struct {
	http *resty.Client
}

func NewPlacesClient(baseURL, apiKey string) *PlacesClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", "KakaoAK "+apiKey).
		SetTimeout(5 * time.Second)
	return &PlacesClient{http: c}
}

// SearchNearby returns restaurant candidates within radius meters of the
// given point, mapped into the scorer's Restaurant shape.
func (p *PlacesClient) SearchNearby(ctx context.Context, lat, lng float64, radius int) ([]recommend.Restaurant, error) {
	var out placeSearchResponse
	resp, err := p.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"category_group_code": restaurantCategoryGroup,
			"x":                   strconv.FormatFloat(lng, 'f', -1, 64),
			"y":                   strconv.FormatFloat(lat, 'f', -1, 64),
			"radius":              strconv.Itoa(radius),
			"size":                strconv.Itoa(defaultPageSize),
			"sort":                "distance",
		}).
		SetResult(&out).
		Get("/v2/local/search/category.json")
	if err != nil {
		return nil, fmt.Errorf("place search request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("place search: status %d", resp.StatusCode())
	}

	restaurants := make([]recommend.Restaurant, 0, len(out.Documents))
	for _, doc := range out.Documents {
		restaurants = append(restaurants, doc.toRestaurant())
	}
	return restaurants, nil
}

func (d placeDocument) toRestaurant() recommend.Restaurant {
	r := recommend.Restaurant{
		ID:       d.ID,
		Name:     d.PlaceName,
		Category: leafCategory(d.CategoryName),
		Address:  firstNonEmpty(d.RoadAddressName, d.AddressName),
		Phone:    d.Phone,
		Link:     d.PlaceURL,
	}
	if m, err := strconv.Atoi(d.Distance); err == nil {
		r.DistanceM = &m
	}
	if lng, err := strconv.ParseFloat(d.X, 64); err == nil {
		r.Lng = lng
	}
	if lat, err := strconv.ParseFloat(d.Y, 64); err == nil {
		r.Lat = lat
	}
	return r
}

// leafCategory trims a hierarchical label like "음식점 > 한식 > 국밥" down to
// its most specific segment, which is what the keyword tables match on.
func leafCategory(full string) string {
	if i := strings.LastIndex(full, ">"); i >= 0 {
		return strings.TrimSpace(full[i+1:])
	}
	return strings.TrimSpace(full)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
