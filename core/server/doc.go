// Package server wraps net/http.Server with configuration from the
// environment and graceful shutdown.
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Run starts the server and, once ctx is cancelled, shuts it down within the
// configured timeout.
package server
