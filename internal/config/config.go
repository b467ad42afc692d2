package config

import (
	"github.com/caarlos0/env/v11"
)

// Config regroupe toute la configuration du serveur, chargée depuis l'environnement
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// PostgreSQL
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"invasisee"`

	// Classification provider (OpenAI-compatible). Sans clé, la
	// classification est désactivée et les soumissions répondent "skipped".
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Image storage
	UploadDir string `env:"UPLOAD_DIR" envDefault:"./uploads"`

	// Cloudinary (optionnel; si renseigné, les images partent sur Cloudinary
	// au lieu du disque local)
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
}

// Load parse la configuration depuis les variables d'environnement
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
