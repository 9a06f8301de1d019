// Command servicetoken prints a bearer token for the admin routes, signed with JWT_SECRET.
//
//	servicetoken -subject ingestion -ttl 720h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"brasilnasteam/backend/pkg/jwt"
)

func main() {
	subject := flag.String("subject", "ingestion", "token subject")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime, 0 for no expiry")
	flag.Parse()

	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	token, err := jwt.GenerateToken(v.GetString("JWT_SECRET"), *subject, jwt.ScopeAdmin, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "servicetoken:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
