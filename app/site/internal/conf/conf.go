package conf

type Bootstrap struct {
	Server      *Server
	Calibration *Calibration
	Site        *Site
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

// Calibration 校准引擎配置，启动时转换为 pkg/config.Config
type Calibration struct {
	Llm         *LLM         `json:"llm"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
}

type LLM struct {
	Provider string `json:"provider"`
	BaseUrl  string `json:"base_url"`
	ApiKey   string `json:"api_key"`
	Model    string `json:"model"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}

// Site 页面与会话相关配置
type Site struct {
	SessionTtl         string `json:"session_ttl"`
	EnrichPublications bool   `json:"enrich_publications"`
	EnrichTimeout      string `json:"enrich_timeout"`
}
