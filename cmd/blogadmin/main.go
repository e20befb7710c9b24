// Command blogadmin creates staff accounts, which may edit and delete any
// post. The HTTP API never grants the staff flag.
//
// It reads the same configuration as the server (env, flags, JSON file) and
// accepts two extra flags:
//
//	blogadmin -username admin -password secret [server flags...]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/api-blog/internal/app"
	"github.com/MKhiriev/api-blog/internal/config"
	"github.com/MKhiriev/api-blog/internal/logger"
	"github.com/MKhiriev/api-blog/internal/validators"
	"github.com/MKhiriev/api-blog/models"
)

func main() {
	log := logger.NewLogger("blogadmin")

	username, password, rest, err := parseAdminFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.GetStructuredConfig(rest)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg, models.NewAppBuildInfo("", "", ""), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}
	defer application.Close()

	user, err := application.Services().AuthService.RegisterUser(ctx, models.User{
		Username: username,
		Password: password,
		IsStaff:  true,
	})
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		log.Error().Any("errors", verr.Fields).Msg("invalid staff account")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("error creating staff account")
		return
	}

	log.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("staff account created")
}

// parseAdminFlags extracts -username and -password and returns the remaining
// arguments for the configuration parser.
func parseAdminFlags(args []string) (username, password string, rest []string, err error) {
	fs := flag.NewFlagSet("blogadmin", flag.ContinueOnError)
	fs.StringVar(&username, "username", "", "username of the staff account")
	fs.StringVar(&password, "password", "", "password of the staff account")

	var passthrough []string
	for i := 0; i < len(args); i++ {
		name := flagName(args[i])
		if name != "username" && name != "password" {
			passthrough = append(passthrough, args[i])
			continue
		}

		own := []string{args[i]}
		if !hasInlineValue(args[i]) && i+1 < len(args) {
			own = append(own, args[i+1])
			i++
		}
		if err = fs.Parse(own); err != nil {
			return "", "", nil, err
		}
	}

	if username == "" || password == "" {
		return "", "", nil, errors.New("both -username and -password are required")
	}
	return username, password, passthrough, nil
}
