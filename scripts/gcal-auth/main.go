// scripts/gcal-auth/main.go
//
// Run this once locally to authorize Google Calendar access for OAuth
// desktop credentials and write the token the API server reads.
//
// Usage:
//   go run scripts/gcal-auth/main.go [credentials.json] [token.json]

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"

	"clinic-assistant/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	tokenPath := "token.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	config, err := gcalendar.OAuthConfigFromFile(credsPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("BƯỚC 1: Mở URL sau trong trình duyệt và đăng nhập tài khoản Google của phòng khám:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("BƯỚC 2: Dán authorization code vào đây rồi Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println()
	fmt.Printf("Token đã được lưu tại: %s\n", tokenPath)
	fmt.Println("Đặt google_calendar.token_path trỏ tới file này rồi khởi động lại server.")
}
