package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tweetline/backend/internal/models"
	"tweetline/backend/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	// Swagger imports
	_ "tweetline/backend/docs" // This is important for swag to find the generated docs
)

var rootCmd = &cobra.Command{
	Use:   "tweetline",
	Short: "Micro-blogging backend: accounts, tweets, likes and follows",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(func(db *gorm.DB, log *logrus.Logger) {
			log.Info("schema is up to date")
		})
	},
}

var promoteCmd = &cobra.Command{
	Use:   "promote [username]",
	Short: "Grant the admin role to an existing user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var promoteErr error
		err := invoke(func(users *store.UserRepository, log *logrus.Logger) {
			promoteErr = users.SetRole(cmd.Context(), args[0], models.RoleAdmin)
			if promoteErr == nil {
				log.WithField("username", args[0]).Info("user promoted to admin")
			}
		})
		if err != nil {
			return err
		}
		return promoteErr
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, promoteCmd)
}

// @title           Tweetline API
// @version         1.0
// @description     A small micro-blogging service: accounts, tweets, likes and a follow graph.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func invoke(fn interface{}) error {
	container, err := BuildContainer()
	if err != nil {
		return err
	}
	if err := container.Invoke(fn); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	var serveErr error
	err := invoke(func(server *http.Server, log *logrus.Logger, db *gorm.DB) {
		serveErr = serve(cmd.Context(), server, log)
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err != nil {
		return err
	}
	return serveErr
}

func serve(ctx context.Context, server *http.Server, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("server is running")
		log.Infof("Swagger UI is available at http://localhost%s/swagger/index.html", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
