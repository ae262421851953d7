package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type Google struct {
	// ServiceAccountJSON is the raw credential env value. It may be a JSON
	// object, a JSON-encoded string wrapping one, or base64 of either;
	// infra/googleauth normalizes it.
	ServiceAccountJSON string
	// CredentialsFile is a path to a key file, used when the env JSON is
	// not set.
	CredentialsFile string
	SheetID         string
	DriveFolderID   string
}

type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Enabled reports whether all three Cloudinary credential fields are
// present. When they are, Cloudinary is preferred over Drive for covers.
func (c Cloudinary) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type Config struct {
	HTTP       HTTPServer
	Google     Google
	Cloudinary Cloudinary
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:       *newHTTP(),
		Google:     *newGoogle(),
		Cloudinary: *newCloudinary(),
	}

	if cfg.Google.SheetID == "" {
		log.Fatalf("%s GOOGLE_SHEET_ID is required", logtag)
	}
	if cfg.Google.ServiceAccountJSON == "" && cfg.Google.CredentialsFile == "" {
		log.Fatalf("%s set GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_APPLICATION_CREDENTIALS", logtag)
	}

	log.Printf("%s backend config : sheet=%s cloudinary=%v", logtag, cfg.Google.SheetID, cfg.Cloudinary.Enabled())
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newGoogle() *Google {
	return &Google{
		ServiceAccountJSON: getsecret("GOOGLE_SERVICE_ACCOUNT_JSON"),
		CredentialsFile:    getsecret("GOOGLE_APPLICATION_CREDENTIALS"),
		SheetID:            getenv("GOOGLE_SHEET_ID", ""),
		DriveFolderID:      getenv("GOOGLE_DRIVE_FOLDER_ID", ""),
	}
}

func newCloudinary() *Cloudinary {
	return &Cloudinary{
		CloudName: getenv("CLOUDINARY_CLOUD_NAME", ""),
		APIKey:    getsecret("CLOUDINARY_API_KEY"),
		APISecret: getsecret("CLOUDINARY_API_SECRET"),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

// getsecret is getenv without echoing the value.
func getsecret(key string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined\n", logtag, key)
		return ""
	}
	fmt.Printf("%s %s is set\n", logtag, key)
	return val
}
