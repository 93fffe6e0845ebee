package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ShopifyShop       string
	ShopifyToken      string
	ShopifyAPIVersion string
	ShopifyLocationID string

	Locate2uBaseURL      string
	Locate2uClientID     string
	Locate2uClientSecret string

	SlackWebhookURL string

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	JWTSecret string
}
