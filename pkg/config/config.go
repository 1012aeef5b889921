package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	DB     DBConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Alegra AlegraConfig
	Cash   CashConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // zona horaria del punto de venta
}

// AlegraConfig credenciales y parámetros del cliente Alegra.
type AlegraConfig struct {
	User           string // email de la cuenta Alegra
	Token          string // token de API
	BaseURL        string
	TimeoutSeconds int
}

// CashConfig parámetros del cierre de caja.
type CashConfig struct {
	TargetBase           int64 // base objetivo que queda en caja al cierre
	SmallChangeThreshold int64 // denominaciones bajo este valor se consideran "menudo"
	CoinDenominations    []int64
	BillDenominations    []int64
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	userInfo := url.UserPassword(c.User, c.Password)

	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}

	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, ALEGRA_USER, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "koaj-backoffice"),
			Timezone: getString(v, "APP_TIMEZONE", "America/Bogota"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "koaj_backoffice"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "koaj-backoffice"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Alegra: AlegraConfig{
			User:           getString(v, "ALEGRA_USER", ""),
			Token:          getString(v, "ALEGRA_TOKEN", ""),
			BaseURL:        getString(v, "ALEGRA_API_BASE_URL", "https://app.alegra.com/api/v1"),
			TimeoutSeconds: getInt(v, "ALEGRA_TIMEOUT", 30),
		},
		Cash: CashConfig{
			TargetBase:           getInt64(v, "CASH_TARGET_BASE", 450000),
			SmallChangeThreshold: getInt64(v, "CASH_SMALL_CHANGE_THRESHOLD", 2000),
			CoinDenominations:    getInt64Slice(v, "CASH_COIN_DENOMINATIONS", []int64{50, 100, 200, 500, 1000}),
			BillDenominations:    getInt64Slice(v, "CASH_BILL_DENOMINATIONS", []int64{2000, 5000, 10000, 20000, 50000, 100000}),
		},
	}

	return cfg, nil
}

// Validate revisa que la configuración mínima para operar esté presente.
func (c *Config) Validate() []string {
	var errs []string
	if c.JWT.Secret == "" {
		errs = append(errs, "JWT_SECRET no configurado")
	}
	if c.Alegra.User == "" || c.Alegra.Token == "" {
		errs = append(errs, "credenciales de Alegra incompletas (ALEGRA_USER / ALEGRA_TOKEN)")
	}
	if c.Cash.TargetBase <= 0 {
		errs = append(errs, "CASH_TARGET_BASE debe ser positivo")
	}
	return errs
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

func getInt64(v *viper.Viper, key string, def int64) int64 {
	if v.IsSet(key) {
		return int64(getInt(v, key, int(def)))
	}
	return def
}

// getInt64Slice parsea listas separadas por coma: "50,100,200".
func getInt64Slice(v *viper.Viper, key string, def []int64) []int64 {
	if !v.IsSet(key) {
		return def
	}
	parts := strings.Split(v.GetString(key), ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return def
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return def
	}
	return out
}
