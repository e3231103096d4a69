package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"blastgear.db"`
	UploadDir   string `env:"UPLOAD_DIR" envDefault:"uploads"`

	Admin   Admin   `envPrefix:"ADMIN_"`
	JWT     JWT     `envPrefix:"JWT_"`
	Stripe  Stripe  `envPrefix:"STRIPE_"`
	Captcha Captcha
	SMTP    SMTP `envPrefix:"SMTP_"`
}

type Admin struct {
	Username     string `env:"USERNAME" envDefault:"admin"`
	PasswordHash string `env:"PASSWORD_HASH"`
	Email        string `env:"EMAIL"` // order notifications go here
}

type JWT struct {
	Secret string        `env:"SECRET_KEY"`
	TTL    time.Duration `env:"TTL" envDefault:"8h"`
}

type Stripe struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.stripe.com"`
	SecretKey  string `env:"SECRET_KEY"`
}

type Captcha struct {
	HCaptchaSecret  string `env:"HCAPTCHA_SECRET"`
	RecaptchaSecret string `env:"RECAPTCHA_SECRET_KEY"`
}

type SMTP struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

func (e Environment) IsDevelopment() bool {
	return e.Name == "development"
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
