package config

func loadProductionConfig(cfg *Config) {
	cfg.DatabaseFilePath = "/data/shelfkeeper.sqlite"
	cfg.ServerHost = "0.0.0.0"
}
