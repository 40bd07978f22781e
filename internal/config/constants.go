package config

import "time"

// Configuration file paths
const (
	ConfigPathShopItems = "configs/shop_items.json"
)

// Defaults applied when the environment leaves a knob unset
const (
	DefaultPort = 8080

	DefaultDBMaxConns    = 10
	DefaultDBMaxIdleTime = 5 * time.Minute
	DefaultDBMaxLifetime = 30 * time.Minute

	DefaultEventMaxRetries = 3
	DefaultEventRetryDelay = 500 * time.Millisecond

	DefaultCatalogCacheSize = 512
	DefaultCatalogCacheTTL  = 5 * time.Minute
)
