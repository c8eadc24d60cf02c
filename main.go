package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"

	"github.com/moyoez/portfolio-resolver/api"
	"github.com/moyoez/portfolio-resolver/notify"
	"github.com/moyoez/portfolio-resolver/remote"
	"github.com/moyoez/portfolio-resolver/resolver"
	"github.com/moyoez/portfolio-resolver/share"
	"github.com/moyoez/portfolio-resolver/tool"
	"github.com/moyoez/portfolio-resolver/types"
)

func buildResolver(cfg tool.AppConfig) *resolver.Resolver {
	client := remote.NewContentsClient(cfg.Repository, remote.Options{
		HTTPClient:        tool.NewHTTPClient(cfg.Client.Timeout()),
		UserAgent:         cfg.Client.UserAgent,
		RequestsPerSecond: cfg.Client.RequestsPerSecond,
	})
	return resolver.New(cfg.Repository, client,
		resolver.WithCache(share.NewListingCache(cfg.Client.CacheTTL())),
		resolver.WithLogger(tool.DefaultLogger),
	)
}

// resolveOnce prints one category as JSON, the way the API would serve it.
func resolveOnce(ctx context.Context, res *resolver.Resolver, category types.Category) error {
	spec, ok := types.LookupCategory(category)
	if !ok {
		return fmt.Errorf("unknown category %q", category)
	}
	var (
		status types.Status
		value  any
	)
	switch {
	case !spec.IsDirectory():
		r := res.ResolveProfile(ctx)
		status, value = r.Status, r.Value
	case category == types.CategoryAchievements:
		r := res.ResolveMany(ctx, category)
		status, value = r.Status, r.Value
	default:
		r := res.ResolveSingle(ctx, category)
		status, value = r.Status, r.Value
	}
	out, err := sonic.ConfigStd.MarshalIndent(map[string]any{"status": status.String(), "data": value}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func probeAPIHost(cfg tool.AppConfig) error {
	host, err := tool.HostOf(cfg.Repository.APIBaseURL)
	if err != nil {
		return err
	}
	result, err := tool.ProbeHost(host, 3, 5*time.Second)
	if err != nil {
		return err
	}
	tool.DefaultLogger.Infof("Probe %s (%s): %d/%d replies, loss %.0f%%, avg rtt %s",
		result.Host, result.Addr, result.PacketsRecv, result.PacketsSent, result.PacketLoss, result.AvgRtt)
	if !result.Reachable() {
		return fmt.Errorf("%s is unreachable", host)
	}
	return nil
}

func run() error {
	flags, err := tool.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, err := tool.LoadConfig(flags.UseConfigPath)
	if err != nil {
		return err
	}
	cfg.ApplyFlags(flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := tool.InitLogger(cfg.Log.Dir); err != nil {
		return err
	}
	tool.SetLogMode(cfg.Log.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flags.Probe {
		return probeAPIHost(cfg)
	}

	res := buildResolver(cfg)
	if flags.Resolve != "" {
		return resolveOnce(ctx, res, types.Category(flags.Resolve))
	}

	notifier, err := notify.New(cfg.Notify.URL, tool.NewHTTPClient(cfg.Client.Timeout()))
	if err != nil {
		return err
	}
	tool.DefaultLogger.Infof("Serving files of %s/%s (branch %s)", cfg.Repository.Owner, cfg.Repository.Name, cfg.Repository.Branch)

	server := api.NewServer(cfg.Server.Listen, res, notifier)
	if cfg.Server.HTTPS {
		cert, err := tool.GenerateTLSCert()
		if err != nil {
			return err
		}
		server.EnableTLS(cert)
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		tool.DefaultLogger.Info("Shutting down portfolio API")
		return server.Stop(context.Background())
	}
}

func main() {
	if err := run(); err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
}
