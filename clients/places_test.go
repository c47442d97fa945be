package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacesClientSearchNearby(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/local/search/category.json", r.URL.Path)
		assert.Equal(t, "FD6", r.URL.Query().Get("category_group_code"))
		assert.Equal(t, "KakaoAK test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"documents":[
			{"id":"100","place_name":"시장국밥","category_name":"음식점 > 한식 > 국밥","address_name":"서울 중구 1-1",
			 "road_address_name":"서울 중구 명동길 1","phone":"02-123-4567","place_url":"http://place/100",
			 "distance":"240","x":"126.9784","y":"37.5665"},
			{"id":"200","place_name":"라쿠치나","category_name":"음식점 > 양식 > 이탈리안","address_name":"서울 중구 2-2",
			 "road_address_name":"","phone":"","place_url":"http://place/200",
			 "distance":"","x":"bad","y":""}
		],"meta":{"total_count":2,"pageable_count":2,"is_end":true}}`))
	}))
	defer srv.Close()

	client := NewPlacesClient(srv.URL, "test-key")
	got, err := client.SearchNearby(context.Background(), 37.5665, 126.9784, 500)
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "100", first.ID)
	assert.Equal(t, "시장국밥", first.Name)
	assert.Equal(t, "국밥", first.Category)
	assert.Equal(t, "서울 중구 명동길 1", first.Address)
	require.NotNil(t, first.DistanceM)
	assert.Equal(t, 240, *first.DistanceM)
	assert.Equal(t, 37.5665, first.Lat)

	// Empty or malformed numeric fields stay absent instead of failing the call.
	second := got[1]
	assert.Equal(t, "이탈리안", second.Category)
	assert.Equal(t, "서울 중구 2-2", second.Address)
	assert.Nil(t, second.DistanceM)
	assert.Zero(t, second.Lng)
}

func TestPlacesClientSearchNearbyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewPlacesClient(srv.URL, "bad-key")
	_, err := client.SearchNearby(context.Background(), 37.5, 127.0, 500)
	assert.Error(t, err)
}

func TestLeafCategory(t *testing.T) {
	assert.Equal(t, "국밥", leafCategory("음식점 > 한식 > 국밥"))
	assert.Equal(t, "한식", leafCategory("음식점 > 한식"))
	assert.Equal(t, "카페", leafCategory("카페"))
	assert.Equal(t, "", leafCategory(""))
}
