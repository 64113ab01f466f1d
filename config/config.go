package config

type AppConfig struct {
	Arena *ArenaConfig
}

func New() *AppConfig {
	return &AppConfig{
		Arena: NewArenaConfig(),
	}
}
