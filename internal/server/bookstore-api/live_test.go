package bookstoreapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	apperrors "bookcafe-search/internal/common/errors"
	"bookcafe-search/internal/common/logger"
	"bookcafe-search/internal/common/observability"
	"bookcafe-search/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoItemsXML = `<?xml version="1.0" encoding="UTF-8"?>
<response>
  <header><resultCode>0000</resultCode><resultMsg>OK</resultMsg></header>
  <body>
    <totalCount>2</totalCount>
    <items>
      <item>
        <TITLE>책방 연희</TITLE>
        <ADDRESS>서울특별시 서대문구 연희로 25</ADDRESS>
        <CONTACT_POINT>02-322-0000</CONTACT_POINT>
        <DESCRIPTION>독립서점</DESCRIPTION>
        <SUB_DESCRIPTION>월요일 휴무</SUB_DESCRIPTION>
        <COORDINATES>37.56,126.93</COORDINATES>
      </item>
      <item>
        <ADDRESS>부산</ADDRESS>
      </item>
    </items>
  </body>
</response>`

func newTestSource(t *testing.T, baseURL string) *LiveSource {
	t.Helper()
	cfg := LoadConfig()
	cfg.BaseURL = baseURL
	cfg.APIKey = "test-key"
	cfg.Timeout = time.Second
	cfg.RPS = 0
	return NewLiveSource(cfg, observability.NewNoop(), logger.NewTestLogger(t))
}

func serveXML(t *testing.T, body string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func requireStandardError(t *testing.T, err error) *apperrors.StandardError {
	t.Helper()
	require.Error(t, err)
	stdErr, ok := err.(*apperrors.StandardError)
	require.True(t, ok, "expected *StandardError, got %T", err)
	return stdErr
}

// ==========================
// LiveSource
// ==========================

func TestLiveSource_Success(t *testing.T) {
	var query map[string]string
	server := serveXML(t, twoItemsXML, func(r *http.Request) {
		q := r.URL.Query()
		query = map[string]string{
			"serviceKey": q.Get("serviceKey"),
			"numOfRows":  q.Get("numOfRows"),
			"pageNo":     q.Get("pageNo"),
			"keyword":    q.Get("keyword"),
		}
	})

	result, err := newTestSource(t, server.URL).Search(context.Background(), "연희", 1)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"serviceKey": "test-key",
		"numOfRows":  "10",
		"pageNo":     "1",
		"keyword":    "연희",
	}, query)

	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, models.DataSourceLive, result.DataSource)
	require.Len(t, result.Stores, 2)
	assert.Equal(t, models.StoreInfo{
		Title:          "책방 연희",
		Address:        "서울특별시 서대문구 연희로 25",
		Contact:        "02-322-0000",
		Description:    "독립서점",
		SubDescription: "월요일 휴무",
		Coordinates:    "37.56,126.93",
	}, result.Stores[0])
	assert.Equal(t, "이름 없음", result.Stores[1].Title)
}

func TestLiveSource_SingleItem(t *testing.T) {
	server := serveXML(t, `<response><header><resultCode>0000</resultCode></header>
		<body><totalCount>1</totalCount><items><item><TITLE>하나</TITLE></item></items></body></response>`, nil)

	result, err := newTestSource(t, server.URL).Search(context.Background(), "하나", 1)

	require.NoError(t, err)
	require.Len(t, result.Stores, 1)
	assert.Equal(t, "하나", result.Stores[0].Title)
}

func TestLiveSource_OmitsEmptyKeyword(t *testing.T) {
	hasKeyword := true
	server := serveXML(t, twoItemsXML, func(r *http.Request) {
		_, hasKeyword = r.URL.Query()["keyword"]
	})

	_, err := newTestSource(t, server.URL).Search(context.Background(), "", 2)

	require.NoError(t, err)
	assert.False(t, hasKeyword)
}

func TestLiveSource_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantCode    apperrors.ErrorCode
		wantMessage string
	}{
		{
			name:        "api error code",
			body:        `<response><header><resultCode>0030</resultCode><resultMsg>SERVICE KEY IS NOT REGISTERED</resultMsg></header></response>`,
			wantCode:    apperrors.ErrCodeUpstreamAPIError,
			wantMessage: "API 오류: SERVICE KEY IS NOT REGISTERED (코드: 0030)",
		},
		{
			name:        "zero total",
			body:        `<response><header><resultCode>0000</resultCode></header><body><totalCount>0</totalCount></body></response>`,
			wantCode:    apperrors.ErrCodeNoResults,
			wantMessage: "검색 결과가 없습니다.",
		},
		{
			name:        "no items",
			body:        `<response><header><resultCode>0000</resultCode></header><body><totalCount>3</totalCount><items></items></body></response>`,
			wantCode:    apperrors.ErrCodeNoResults,
			wantMessage: "검색 결과가 없습니다.",
		},
		{
			name:        "no body",
			body:        `<response><header><resultCode>0000</resultCode></header></response>`,
			wantCode:    apperrors.ErrCodeNoResults,
			wantMessage: "검색 결과가 없습니다.",
		},
		{
			name:        "wrong root",
			body:        `<OpenAPI_ServiceResponse><cmmMsgHeader/></OpenAPI_ServiceResponse>`,
			wantCode:    apperrors.ErrCodeUpstreamFormatInvalid,
			wantMessage: "API 응답 형식이 올바르지 않습니다.",
		},
		{
			name:     "not xml",
			body:     `{"json": true}`,
			wantCode: apperrors.ErrCodeProcessingFailed,
		},
		{
			name:     "bad total",
			body:     `<response><header><resultCode>0000</resultCode></header><body><totalCount>many</totalCount></body></response>`,
			wantCode: apperrors.ErrCodeProcessingFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serveXML(t, tt.body, nil)

			_, err := newTestSource(t, server.URL).Search(context.Background(), "서점", 1)

			stdErr := requireStandardError(t, err)
			assert.Equal(t, tt.wantCode, stdErr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, stdErr.Message)
			} else {
				assert.Contains(t, stdErr.Message, "처리 중 오류가 발생했습니다: ")
			}
		})
	}
}

func TestLiveSource_HTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestSource(t, server.URL).Search(context.Background(), "서점", 1)

	stdErr := requireStandardError(t, err)
	assert.Equal(t, apperrors.ErrCodeUpstreamUnavailable, stdErr.Code)
	assert.Equal(t, "네트워크 오류: API 서버에 연결할 수 없습니다.", stdErr.Message)
	assert.True(t, stdErr.Retryable)
}

func TestLiveSource_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newTestSource(t, url).Search(context.Background(), "서점", 1)

	assert.Equal(t, apperrors.ErrCodeUpstreamUnavailable, requireStandardError(t, err).Code)
}

func TestLiveSource_RateLimited(t *testing.T) {
	var calls int32
	server := serveXML(t, twoItemsXML, func(r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	cfg := LoadConfig()
	cfg.BaseURL = server.URL
	cfg.RPS = 0.001
	cfg.Burst = 1
	source := NewLiveSource(cfg, nil, logger.NewNoOpLogger())

	_, err := source.Search(context.Background(), "서점", 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = source.Search(ctx, "서점", 1)

	assert.Equal(t, apperrors.ErrCodeUpstreamUnavailable, requireStandardError(t, err).Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFromAppConfig(t *testing.T) {
	cfg := FromAppConfig(configFixture())

	assert.Equal(t, "http://localhost/api", cfg.BaseURL)
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, 25, cfg.NumOfRows)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 2.0, cfg.RPS)
	assert.Equal(t, 3, cfg.Burst)
}
