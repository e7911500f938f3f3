package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Auth         Auth
	Mail         Mail
	Stripe       Stripe
	FrontendURL  string
	ImportKey    string
	GeminiApiKey string
	LogLevel     string
	Env          string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Auth struct {
	JWTSecret string
}

type Mail struct {
	Host         string
	Port         int
	Username     string
	Password     string
	From         string
	ContactInbox string
}

type Stripe struct {
	SecretKey      string
	WebhookSecret  string
	DefaultPriceID string

	// PlanPrices maps a plan name (bronce, plata, oro, platino) to its price id.
	PlanPrices map[string]string
}

// Plans accepted at checkout.
var Plans = []string{"bronce", "plata", "oro", "platino"}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("EMAIL_PORT", 587)
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.Mail.Host = viper.GetString("EMAIL_HOST")
	config.Mail.Port = viper.GetInt("EMAIL_PORT")
	config.Mail.Username = viper.GetString("EMAIL_HOST_USER")
	config.Mail.Password = viper.GetString("EMAIL_HOST_PASSWORD")
	config.Mail.From = viper.GetString("DEFAULT_FROM_EMAIL")
	config.Mail.ContactInbox = viper.GetString("CONTACT_EMAIL")
	if config.Mail.ContactInbox == "" {
		config.Mail.ContactInbox = config.Mail.From
	}

	config.Stripe.SecretKey = viper.GetString("STRIPE_SECRET_KEY")
	config.Stripe.WebhookSecret = viper.GetString("STRIPE_WEBHOOK_SECRET")
	config.Stripe.DefaultPriceID = viper.GetString("STRIPE_PRICE_ID")
	config.Stripe.PlanPrices = make(map[string]string, len(Plans))
	for _, plan := range Plans {
		config.Stripe.PlanPrices[plan] = viper.GetString("NEXT_PUBLIC_STRIPE_PRICE_" + strings.ToUpper(plan))
	}

	config.FrontendURL = strings.TrimRight(viper.GetString("FRONTEND_URL"), "/")
	config.ImportKey = viper.GetString("EXAMEN_IMPORT_KEY")
	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.LogLevel = viper.GetString("LOG_LEVEL")
	config.Env = viper.GetString("APP_ENV")

	if config.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set, the API server will refuse to start")
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("dbHost", config.Database.Host).
		Str("dbName", config.Database.Name).
		Str("frontend", config.FrontendURL).
		Bool("mailConfigured", config.Mail.Host != "").
		Bool("stripeConfigured", config.Stripe.SecretKey != "").
		Msg("Config loaded")
	return &config, nil
}

// PriceFor resolves the Stripe price id for a plan, falling back to the default price.
func (s Stripe) PriceFor(plan string) string {
	if id := s.PlanPrices[strings.ToLower(strings.TrimSpace(plan))]; id != "" {
		return id
	}
	return s.DefaultPriceID
}
