package main

import (
	"fmt"
	"time"

	"github.com/osse101/WeaponPaints_Go/internal/auth"
	"github.com/osse101/WeaponPaints_Go/internal/config"
)

const defaultTokenTTL = 24 * time.Hour

// TokenCommand issues a bearer token for a player, signed with JWT_SECRET
type TokenCommand struct{}

func (c *TokenCommand) Name() string {
	return "token"
}

func (c *TokenCommand) Description() string {
	return "Issue a player bearer token: token <steamid> [ttl]"
}

func (c *TokenCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("steam id required")
	}

	ttl := defaultTokenTTL
	if len(args) > 1 {
		d, err := time.ParseDuration(args[1])
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid ttl %q", args[1])
		}
		ttl = d
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	token, err := issueToken(cfg.JWTSecret, args[0], ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func issueToken(secret, steamID string, ttl time.Duration) (string, error) {
	return auth.NewVerifier(secret).Issue(steamID, ttl)
}
