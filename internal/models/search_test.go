package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	q, ok := NewQuery("  독립서점 \n")
	assert.True(t, ok)
	assert.Equal(t, Query{Keyword: "독립서점", Page: 1}, q)

	_, ok = NewQuery(" \t ")
	assert.False(t, ok)

	_, ok = NewQuery("")
	assert.False(t, ok)
}

func TestDataSourceFromWire(t *testing.T) {
	assert.Equal(t, DataSourceLive, DataSourceFromWire("real_api"))
	assert.Equal(t, DataSourceSample, DataSourceFromWire("sample"))
	assert.Equal(t, DataSourceSample, DataSourceFromWire("dummy"))
	assert.Equal(t, DataSourceSample, DataSourceFromWire(""))

	assert.Equal(t, "real_api", DataSourceLive.Wire())
	assert.Equal(t, "sample", DataSourceSample.Wire())
}

func TestSearchResponse_ToResult(t *testing.T) {
	resp := &SearchResponse{TotalCount: 3, DataSource: "real_api"}

	result := resp.ToResult()

	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, DataSourceLive, result.DataSource)
	assert.NotNil(t, result.Stores)
	assert.Empty(t, result.Stores)
	assert.Empty(t, result.AIAnalysis)
}

func TestSearchResponse_UnmarshalTotalCount(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"integer", `{"total_count": 2, "stores": []}`, 2},
		{"integral float", `{"total_count": 2.0, "stores": []}`, 2},
		{"exponent", `{"total_count": 1e1, "stores": []}`, 10},
		{"absent", `{"stores": []}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp SearchResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			assert.Equal(t, tt.want, resp.TotalCount)
		})
	}
}

func TestSearchResponse_UnmarshalKeepsOtherFields(t *testing.T) {
	var resp SearchResponse
	body := `{"total_count": 1.0, "data_source": "real_api", "ai_analysis": "x", "stores": [{"title": "책방"}]}`

	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, "real_api", resp.DataSource)
	assert.Equal(t, "x", resp.AIAnalysis)
	require.Len(t, resp.Stores, 1)
	assert.Equal(t, "책방", resp.Stores[0].Title)
}

func TestSearchResponse_UnmarshalRejectsFractionalCount(t *testing.T) {
	var resp SearchResponse
	assert.Error(t, json.Unmarshal([]byte(`{"total_count": 1.5, "stores": []}`), &resp))
}
