package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e
// opcionalmente de arquivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Validador ValidadorConfig
	Painel    PainelConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ValidadorConfig configuração da API do validador.
type ValidadorConfig struct {
	BaseURL         string
	TimeoutSegundos int // timeout por busca de categoria
}

// Timeout devolve o timeout por busca como duração.
func (c ValidadorConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSegundos) * time.Second
}

// PainelConfig configuração do motor do painel.
type PainelConfig struct {
	TamanhoPagina int
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de
// arquivo). As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT,
// VALIDATOR_API_BASE, PAGE_SIZE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "sku-validator-litoral"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Validador: ValidadorConfig{
			BaseURL:         getString(v, "VALIDATOR_API_BASE", "https://validator.cavaleiroexpress.com.br"),
			TimeoutSegundos: getInt(v, "FETCH_TIMEOUT_SECONDS", 15),
		},
		Painel: PainelConfig{
			TamanhoPagina: getInt(v, "PAGE_SIZE", 30),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
