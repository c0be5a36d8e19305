package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"

	"github.com/fulldump/icecave/api"
	"github.com/fulldump/icecave/configuration"
	"github.com/fulldump/icecave/database"
)

var VERSION = "dev"

func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	db := database.NewDatabase(&database.Config{
		Dir:           c.Dir,
		FlushInterval: c.FlushInterval,
		Logger:        slog.Default(),
	})

	b := api.Build(db, VERSION)
	b.WithInterceptors(
		api.AccessLog(slog.Default().With("component", "access")),
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic,
		api.InterceptorUnavailable(db),
	)

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		slog.Error("listen", "addr", c.HttpAddr, "err", err)
		os.Exit(-1)
	}
	slog.Info("listening", "addr", ln.Addr().String())

	once := &sync.Once{}
	stop = func() {
		once.Do(func() {
			err := db.Stop()
			if err != nil {
				slog.Error("stop database", "err", err)
			}
			s.Shutdown(context.Background())
		})
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signalChan
		slog.Info("signal received", "signal", sig.String())
		stop()
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Start()
			if err != nil {
				slog.Error("database", "err", err)
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Serve(ln)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("serve", "err", err)
			}
		}()

		wg.Wait()
	}

	return
}
