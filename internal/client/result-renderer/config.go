// internal/client/result-renderer/config.go
package resultrenderer

const (
	DefaultMapSearchBaseURL = "https://map.naver.com/v5/search/"

	AnalysisPlaceholder = "분석 정보가 없습니다."
	LiveBadgeLabel      = "실시간 API 데이터"
	SampleBadgeLabel    = "테스트용 더미 데이터"
	MapActionLabel      = "네이버 지도에서 보기"
)

type Config struct {
	// ShowDataSourceBadge emits the leading live/sample badge. Off reproduces the badge-less layout.
	ShowDataSourceBadge bool
	MapSearchBaseURL    string
}

func LoadConfig() *Config {
	return &Config{
		ShowDataSourceBadge: true,
		MapSearchBaseURL:    DefaultMapSearchBaseURL,
	}
}
