package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Calc CalcConfig
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

// CalcConfig parâmetros padrão do cálculo de rentabilização. São os valores
// aplicados quando a requisição não envia override; cada um pode ser ajustado
// por variável de ambiente (CALC_ALIQUOTA_IMPOSTOS, CALC_PCT_BOOKING, etc.).
type CalcConfig struct {
	AliquotaImpostos float64 // % sobre o valor bruto (Lucro Presumido)

	PrecoCafeAdulto      float64 // R$ por pessoa/dia (POOL)
	PrecoCafeCrianca712  float64
	PrecoCafeCrianca06   float64
	GratuidadeCriancas06 int // crianças 0–6 isentas por reserva

	PctBooking   float64 // % padrão por canal
	PctDecolar   float64
	PctOperadora float64
	TaxaFixaSite float64 // R$ fixo por reserva (motor do site / OMNIBEES)

	PctCartaoPadrao float64 // usado quando a mediana do dataset é indefinida

	PctTaxaAdm float64 // % sobre o líquido antes do IRRF
	PctIRRF    float64 // % sobre o líquido após a taxa administrativa
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, CALC_*, etc.
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
			Name: getString(v, "APP_NAME", "blue-sea-rentabilizacao"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Calc: CalcConfig{
			AliquotaImpostos:     getFloat(v, "CALC_ALIQUOTA_IMPOSTOS", 16.99),
			PrecoCafeAdulto:      getFloat(v, "CALC_PRECO_CAFE_ADULTO", 50.0),
			PrecoCafeCrianca712:  getFloat(v, "CALC_PRECO_CAFE_CRIANCA_7_12", 25.0),
			PrecoCafeCrianca06:   getFloat(v, "CALC_PRECO_CAFE_CRIANCA_0_6", 25.0),
			GratuidadeCriancas06: getInt(v, "CALC_GRATUIDADE_CRIANCAS_0_6", 1),
			PctBooking:           getFloat(v, "CALC_PCT_BOOKING", 18.0),
			PctDecolar:           getFloat(v, "CALC_PCT_DECOLAR", 20.0),
			PctOperadora:         getFloat(v, "CALC_PCT_OPERADORA", 15.0),
			TaxaFixaSite:         getFloat(v, "CALC_TAXA_FIXA_SITE", 15.40),
			PctCartaoPadrao:      getFloat(v, "CALC_PCT_CARTAO_PADRAO", 4.5),
			PctTaxaAdm:           getFloat(v, "CALC_PCT_TAXA_ADM", 10.0),
			PctIRRF:              getFloat(v, "CALC_PCT_IRRF", 0.0),
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, err := strconv.ParseFloat(v.GetString(key), 64)
			if err != nil {
				return def
			}
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
