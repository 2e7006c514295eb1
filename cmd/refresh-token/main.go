// Command refresh-token performs a one-shot Twitch OAuth refresh using env
// credentials and prints the new token. It does not touch the running
// watcher's environment; export the printed token yourself (prefixed with
// oauth: when used for IRC PASS / TWITCH_OAUTH).
//
// Environment:
//
//	TWITCH_CLIENT_ID      (required)
//	TWITCH_CLIENT_SECRET  (required)
//	TWITCH_REFRESH_TOKEN  (required)
//	OUTPUT_JSON=1         write new tokens to .token.json
//	PRINT_EXPORT=1        print export lines for copy/paste
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/onnwee/code-sniper/twitchapi"
)

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	clientID := os.Getenv("TWITCH_CLIENT_ID")
	clientSecret := os.Getenv("TWITCH_CLIENT_SECRET")
	refreshToken := os.Getenv("TWITCH_REFRESH_TOKEN")
	for name, v := range map[string]string{
		"TWITCH_CLIENT_ID":     clientID,
		"TWITCH_CLIENT_SECRET": clientSecret,
		"TWITCH_REFRESH_TOKEN": refreshToken,
	} {
		if v == "" {
			slog.Error("missing required env", slog.String("name", name))
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	slog.Info("refreshing token")
	res, err := twitchapi.RefreshToken(ctx, clientID, clientSecret, refreshToken)
	if err != nil {
		slog.Error("refresh failed", slog.Any("err", err))
		os.Exit(1)
	}
	slog.Info("got new access token",
		slog.Int("length", len(res.AccessToken)),
		slog.Int("expires_in", res.ExpiresIn),
		slog.Time("expires_at", twitchapi.ComputeExpiry(res.ExpiresIn)))

	if os.Getenv("OUTPUT_JSON") == "1" {
		payload := map[string]any{
			"access_token":  res.AccessToken,
			"refresh_token": res.RefreshToken,
			"fetched_at":    time.Now().Unix(),
			"expires_in":    res.ExpiresIn,
			"client_id":     clientID,
		}
		b, err := json.MarshalIndent(payload, "", "  ")
		if err == nil {
			err = os.WriteFile(".token.json", b, 0o600)
		}
		if err != nil {
			slog.Error("write .token.json failed", slog.Any("err", err))
			os.Exit(1)
		}
		slog.Info("wrote .token.json")
	}

	if os.Getenv("PRINT_EXPORT") == "1" {
		fmt.Println()
		fmt.Println("# exports (copy/paste):")
		fmt.Printf("export TWITCH_OAUTH=%q\n", "oauth:"+res.AccessToken)
		fmt.Printf("export TWITCH_REFRESH_TOKEN=%q\n", res.RefreshToken)
	}
}
