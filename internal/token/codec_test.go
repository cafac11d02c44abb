// AngelaMos | 2026
// codec_test.go

package token

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/angelamos/realty/internal/config"
	"github.com/angelamos/realty/internal/core"
)

func testConfig(expire time.Duration) config.JWTConfig {
	return config.JWTConfig{
		Secret:            "0123456789abcdef0123456789abcdef",
		AccessTokenExpire: expire,
		Issuer:            "realty-backend",
		Audience:          "realty-api",
	}
}

func TestIssueAndDecode(t *testing.T) {
	codec, err := NewCodec(testConfig(time.Hour))
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	raw, err := codec.Issue("agent@example.com", "AGENT", 42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := codec.Decode(context.Background(), raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if claims.Email != "agent@example.com" {
		t.Errorf("email = %q, want agent@example.com", claims.Email)
	}
	if claims.Role != "AGENT" {
		t.Errorf("role = %q, want AGENT", claims.Role)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
}

func TestDecodeBearerPrefix(t *testing.T) {
	codec, err := NewCodec(testConfig(time.Hour))
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	raw, err := codec.Issue("buyer@example.com", "BUYER", 7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := codec.Decode(context.Background(), "Bearer "+raw)
	if err != nil {
		t.Fatalf("Decode with bearer prefix: %v", err)
	}

	if claims.UserID != 7 || claims.Role != "BUYER" {
		t.Errorf(
			"claims = {%d %s}, want {7 BUYER}",
			claims.UserID,
			claims.Role,
		)
	}
}

func TestDecodeExpired(t *testing.T) {
	codec, err := NewCodec(testConfig(-time.Minute))
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	raw, err := codec.Issue("buyer@example.com", "BUYER", 7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = codec.Decode(context.Background(), raw)
	if !errors.Is(err, core.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestDecodeTampered(t *testing.T) {
	codec, err := NewCodec(testConfig(time.Hour))
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	raw, err := codec.Issue("admin@example.com", "ADMIN", 1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = codec.Decode(context.Background(), tampered)
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	codec, err := NewCodec(testConfig(time.Hour))
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := codec.Decode(context.Background(), raw); !errors.Is(
			err,
			core.ErrTokenInvalid,
		) {
			t.Errorf("Decode(%q) err = %v, want ErrTokenInvalid", raw, err)
		}
	}
}

func TestDecodeWrongSecret(t *testing.T) {
	issuer, err := NewCodec(testConfig(time.Hour))
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	otherCfg := testConfig(time.Hour)
	otherCfg.Secret = "ffffffffffffffffffffffffffffffff"
	verifier, err := NewCodec(otherCfg)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	raw, err := issuer.Issue("agent@example.com", "AGENT", 3)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Decode(context.Background(), raw); !errors.Is(
		err,
		core.ErrTokenInvalid,
	) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}
