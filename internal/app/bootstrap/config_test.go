package bootstrap

import (
	"testing"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "giftmonk_test",
	}
}

func TestValidateConfig(t *testing.T) {
	coreCfg := &config.CoreConfig{}
	logger := zap.NewNop()

	if err := ValidateConfig(coreCfg, validAppConfig(), logger); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := validAppConfig()
	bad.MongoURI = "not-a-mongo-uri"
	if err := ValidateConfig(coreCfg, bad, logger); err == nil {
		t.Error("expected error for malformed mongo URI")
	}

	bad = validAppConfig()
	bad.MongoDatabase = ""
	if err := ValidateConfig(coreCfg, bad, logger); err == nil {
		t.Error("expected error for empty database name")
	}

	bad = validAppConfig()
	bad.GoogleClientID = "client-id-without-secret"
	if err := ValidateConfig(coreCfg, bad, logger); err == nil {
		t.Error("expected error when only one Google OAuth value is set")
	}

	ok := validAppConfig()
	ok.GoogleClientID = "id"
	ok.GoogleClientSecret = "secret"
	if err := ValidateConfig(coreCfg, ok, logger); err != nil {
		t.Errorf("paired Google OAuth values rejected: %v", err)
	}
}
