package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	RedisAddr   string `env:"REDIS_ADDR"`
	RedisPass   string `env:"REDIS_PASSWORD"`
	AmqpURL     string `env:"AMQP_URL"`
	UploadDir   string `env:"UPLOAD_DIR" default:"uploads"`
	Env         string `env:"APP_ENV" default:"dev"`
}
