package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/m-lab/go/flagx"
	"github.com/m-lab/go/prometheusx"
	"github.com/m-lab/go/rtx"

	"github.com/siso-dis/cdis-gateway/internal/gateway"
	"github.com/siso-dis/cdis-gateway/internal/site"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

var (
	configPath = flag.String("config", "", "Path to the gateway configuration file. Empty uses built-in defaults.")
	promPort   = flag.String("prom", ":9090", "Prometheus metrics export address and port.")

	ctx, cancel = context.WithCancel(context.Background())
)

func main() {
	flag.Parse()
	flagx.ArgsFromEnv(flag.CommandLine)

	cfg, err := gateway.LoadConfig(*configPath)
	rtx.Must(err, "Could not load gateway config %q", *configPath)

	promSrv := prometheusx.MustStartPrometheus(*promPort)
	defer promSrv.Shutdown(ctx)

	pipeline, err := gateway.NewPipeline(cfg)
	rtx.Must(err, "Could not open gateway UDP endpoints")

	siteSrv := &http.Server{
		Addr:    localSiteAddr(cfg.SiteHTTPPort),
		Handler: site.NewServer(cfg, pipeline.Stats),
	}
	go func() {
		if err := siteSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("gateway: site server stopped: %v", err)
		}
	}()
	defer siteSrv.Shutdown(ctx)

	if err := pipeline.Start(ctx); err != nil {
		log.Printf("gateway: pipeline exited with error: %v", err)
		cancel()
	}
}

func localSiteAddr(port int) string {
	return fmt.Sprintf("127.0.0.1:%d", port)
}
