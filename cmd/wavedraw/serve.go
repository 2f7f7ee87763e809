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

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/gogpu/wavedraw"
	"github.com/gogpu/wavedraw/svg"
	"github.com/gogpu/wavedraw/wavejson"
)

// renderBodyLimit caps the accepted WaveJSON request body.
const renderBodyLimit = 1 << 20

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the rendering service",
	Long: `Starts a small HTTP service that renders WaveJSON documents posted to
/render into SVG responses.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		fontPath, _ := cmd.Flags().GetString("font")
		skinPath, _ := cmd.Flags().GetString("skin")

		metrics, err := loadMetrics(fontPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading font: %v\n", err)
			os.Exit(1)
		}
		opts, err := loadOptions(skinPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading skin: %v\n", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           newHandler(metrics, opts),
			ReadHeaderTimeout: 5 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			fmt.Printf("Wavedraw listening on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nShutting down on signal %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Graceful shutdown did not complete: %v\n", err)
				if err := srv.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Error closing server: %v\n", err)
				}
			}
			fmt.Println("Wavedraw stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8477", "Address to listen on")
	serveCmd.Flags().String("font", "", "TTF font file for text measurement")
	serveCmd.Flags().String("skin", "", "Skin file overlaying the rendering options")
}

// newHandler builds the service router. metrics and opts are shared across
// requests; both are read-only after startup.
func newHandler(metrics wavedraw.TextMetrics, opts *wavedraw.Options) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})

	r.Post("/render", func(w http.ResponseWriter, req *http.Request) {
		body := http.MaxBytesReader(w, req.Body, renderBodyLimit)

		doc, err := wavejson.Parse(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		figure, err := doc.ToFigure()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rendered, err := figure.Assemble(metrics, opts)
		if err != nil {
			var capacity *wavedraw.CapacityError
			if errors.As(err, &capacity) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		if err := svg.Write(w, rendered); err != nil {
			wavedraw.Logger().Warn("render response write failed", "error", err)
		}
	})

	return r
}
