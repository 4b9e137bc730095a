package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-multierror"

	"gitlab.com/tachyons/spa-pages/internal/config"
)

type keepAliveListener struct {
	net.Listener
}

type keepAliveSetter interface {
	SetKeepAlive(bool) error
	SetKeepAlivePeriod(time.Duration) error
}

func (ln *keepAliveListener) Accept() (net.Conn, error) {
	conn, err := ln.Listener.Accept()
	if err != nil {
		return nil, err
	}

	if kc, ok := conn.(keepAliveSetter); ok {
		kc.SetKeepAlive(true)
		kc.SetKeepAlivePeriod(3 * time.Minute)
	}

	return conn, nil
}

func newServer(addr string, handler http.Handler, cfg *config.Server) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
}

func listenAndServe(server *http.Server) error {
	l, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}

	if err := server.Serve(&keepAliveListener{l}); err != http.ErrServerClosed {
		return err
	}

	return nil
}

func shutdownServers(timeout time.Duration, servers ...*http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var result *multierror.Error

	for _, server := range servers {
		if server == nil {
			continue
		}

		result = multierror.Append(result, server.Shutdown(ctx))
	}

	return result.ErrorOrNil()
}
