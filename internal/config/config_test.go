package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.JWTIssuer != "jendo-auth" {
		t.Errorf("JWTIssuer = %q, want %q", cfg.JWTIssuer, "jendo-auth")
	}
	if cfg.JWTAudience != "jendo-api" {
		t.Errorf("JWTAudience = %q, want %q", cfg.JWTAudience, "jendo-api")
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.BcryptCost)
	}
	if cfg.SessionTTL() != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL())
	}
	if cfg.PasscodeTTL() != 10*time.Minute {
		t.Errorf("PasscodeTTL = %v, want 10m", cfg.PasscodeTTL())
	}
	if cfg.KafkaNotifyTopic != "jendo-notifications" {
		t.Errorf("KafkaNotifyTopic = %q, want default", cfg.KafkaNotifyTopic)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	os.Clearenv()
	if _, err := Load(); err == nil {
		t.Fatal("Load should fail without JWT_SECRET")
	}
}

func TestLoad_EnvVarOverride(t *testing.T) {
	os.Clearenv()
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("JWT_TTL", "1h")
	os.Setenv("BCRYPT_COST", "14")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9090")
	}
	if cfg.SessionTTL() != time.Hour {
		t.Errorf("SessionTTL = %v, want 1h", cfg.SessionTTL())
	}
	if cfg.BcryptCost != 14 {
		t.Errorf("BcryptCost = %d, want 14", cfg.BcryptCost)
	}
}

func TestLoad_ShortSecretInProduction(t *testing.T) {
	os.Clearenv()
	os.Setenv("JWT_SECRET", "short")
	os.Setenv("APP_ENV", "production")
	if _, err := Load(); err == nil {
		t.Fatal("Load should reject a short JWT_SECRET in production")
	}
}

func TestKafkaBrokersList(t *testing.T) {
	cfg := &Config{KafkaBrokers: "localhost:9092, broker2:9092 ,"}
	got := cfg.KafkaBrokersList()
	if len(got) != 2 || got[0] != "localhost:9092" || got[1] != "broker2:9092" {
		t.Errorf("KafkaBrokersList = %v", got)
	}
	if (&Config{}).KafkaBrokersList() != nil {
		t.Error("empty brokers should return nil")
	}
}
