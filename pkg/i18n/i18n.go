package i18n

import (
	"reflect"
	"sync"
)

// Language type
type Language string

const (
	LangEN Language = "en"
	LangZH Language = "zh"
)

// Messages holds all translatable strings
type Messages struct {
	// System
	Starting         string
	ConfigLoaded     string
	ConfigLoadFailed string
	ServerListening  string
	MonitorListening string
	ShuttingDown     string
	APIServerError   string

	// License
	LicenseServerStarting string
	LicenseValid          string
	LicenseMissing        string
	LicenseInvalid        string
	UsingDBPath           string
	DBInitFailed          string
	LicenseIssued         string

	// Strategy
	StrategyLoaded           string
	StrategyConfigLoadFailed string
	StrategyConfigMissing    string
	StrategySignal           string
	SignalProcessingPanic    string
}

var (
	currentLang Language = LangEN
	mu          sync.RWMutex
	messages    *Messages
)

// English messages
var messagesEN = Messages{
	// System
	Starting:         "Starting strategy worker...",
	ConfigLoaded:     "Config loaded (gRPC port: %s)",
	ConfigLoadFailed: "Failed to load config: %v",
	ServerListening:  "Server listening on :%s",
	MonitorListening: "Monitor API listening on :%s",
	ShuttingDown:     "Shutting down gracefully...",
	APIServerError:   "Monitor API error: %v",

	// License
	LicenseServerStarting: "Starting license server...",
	LicenseValid:          "License check passed",
	LicenseMissing:        "LICENSE_TOKEN not set, running unlicensed",
	LicenseInvalid:        "License validation failed: %v",
	UsingDBPath:           "Using DB path: %s",
	DBInitFailed:          "Failed to init database: %v",
	LicenseIssued:         "License issued to %s (expires %s)",

	// Strategy
	StrategyLoaded:           "Loaded strategy: %s (%s)",
	StrategyConfigLoadFailed: "Failed to load strategy config: %v",
	StrategyConfigMissing:    "Strategy config %s not found, using built-in default",
	StrategySignal:           "Strategy %s signal: %+v",
	SignalProcessingPanic:    "PANIC in signal processing: %v",
}

// Chinese messages
var messagesZH = Messages{
	// System
	Starting:         "啟動策略訊號工作器...",
	ConfigLoaded:     "設定已載入（gRPC 埠號：%s）",
	ConfigLoadFailed: "讀取設定失敗：%v",
	ServerListening:  "服務監聽於 :%s",
	MonitorListening: "監控 API 監聽於 :%s",
	ShuttingDown:     "正在優雅關閉...",
	APIServerError:   "監控 API 錯誤：%v",

	// License
	LicenseServerStarting: "啟動授權伺服器...",
	LicenseValid:          "授權檢查通過",
	LicenseMissing:        "未設定 LICENSE_TOKEN，以未授權模式執行",
	LicenseInvalid:        "授權驗證失敗：%v",
	UsingDBPath:           "使用資料庫路徑：%s",
	DBInitFailed:          "初始化資料庫失敗：%v",
	LicenseIssued:         "已核發授權給 %s（到期：%s）",

	// Strategy
	StrategyLoaded:           "已載入策略：%s（%s）",
	StrategyConfigLoadFailed: "讀取策略設定失敗：%v",
	StrategyConfigMissing:    "找不到策略設定 %s，改用內建預設",
	StrategySignal:           "策略 %s 訊號：%+v",
	SignalProcessingPanic:    "處理策略訊號時發生 PANIC：%v",
}

func init() {
	messages = &messagesEN
}

// SetLanguage sets the current language
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()

	currentLang = lang
	switch lang {
	case LangZH:
		messages = &messagesZH
	default:
		messages = &messagesEN
	}
}

// GetLanguage returns the current language
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// M returns the current messages
func M() *Messages {
	mu.RLock()
	defer mu.RUnlock()
	return messages
}

// Get returns specific message by key dynamically using reflection
func Get(key string) string {
	msg := M()
	v := reflect.ValueOf(msg).Elem()
	f := v.FieldByName(key)
	if f.IsValid() && f.Kind() == reflect.String {
		return f.String()
	}
	return key
}
