package validator

import (
	"strings"
	"testing"
)

type sampleConfig struct {
	Port    int    `mapstructure:"port" validate:"min=1,max=65535"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

func TestValidateStructPasses(t *testing.T) {
	cfg := sampleConfig{Port: 8080, BaseURL: "https://shop.example.com"}
	if err := ValidateStruct(cfg); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}
}

func TestValidateStructReportsFields(t *testing.T) {
	cfg := sampleConfig{Port: 0, BaseURL: "not-a-url"}
	err := ValidateStruct(cfg)
	if err == nil {
		t.Fatal("expected validation failure")
	}

	ve, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(ve) != 2 {
		t.Fatalf("expected two failures, got %d", len(ve))
	}
	if !strings.Contains(err.Error(), "port") {
		t.Fatalf("expected mapstructure field names in message, got %s", err.Error())
	}
}
