package cmd

import (
	"fmt"
	"log"

	"cfbPickem/config"
	"cfbPickem/scheduler/scheduler_jobs"
	"cfbPickem/services/extService"
	"cfbPickem/services/gameService"
	"cfbPickem/services/importService"
	"cfbPickem/services/messageService"
	"cfbPickem/services/storeService"
	"cfbPickem/web"
)

// Runtime is the wired set of services shared by every command.
type Runtime struct {
	Config    *config.Config
	Store     storeService.Store
	CFBD      *extService.Client
	Announcer messageService.Announcer

	closers []func() error
}

func newRuntime(cfg *config.Config) (*Runtime, error) {
	rt := &Runtime{Config: cfg}

	switch cfg.Store {
	case config.StoreMemory:
		log.Println("using in-memory store, data is lost on exit")
		rt.Store = storeService.NewMemStore()
	default:
		db, err := storeService.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err == nil {
			rt.closers = append(rt.closers, sqlDB.Close)
		}
		rt.Store = storeService.NewGormStore(db)
	}

	var cache extService.ResponseCache = extService.NewMemoryCache(cfg.CFBDCacheTTL)
	if cfg.RedisURL != "" {
		redisCache, err := extService.NewRedisCache(cfg.RedisURL, cfg.CFBDCacheTTL)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("error connecting to redis: %w", err)
		}
		rt.closers = append(rt.closers, redisCache.Close)
		cache = redisCache
	}

	client, err := extService.NewClient(extService.Config{
		BaseURL: cfg.CFBDBaseURL,
		Token:   cfg.CFBDToken,
		Cache:   cache,
	})
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.CFBD = client

	announcer, err := messageService.NewDiscordAnnouncer(cfg.DiscordToken, cfg.DiscordChannelID)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.Announcer = announcer

	return rt, nil
}

func (rt *Runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			log.Printf("error during shutdown: %v", err)
		}
	}
	rt.closers = nil
}

func (rt *Runtime) Importer() *importService.Importer {
	return importService.NewImporter(rt.Store, rt.CFBD, rt.Config.ImportYear)
}

func (rt *Runtime) JobDeps() scheduler_jobs.Deps {
	cfg := rt.Config
	return scheduler_jobs.Deps{
		Store:     rt.Store,
		Lines:     gameService.NewLineRefresher(rt.Store, rt.CFBD, cfg.Policy, cfg.Aliases),
		Results:   gameService.NewResultRecorder(rt.Store, rt.CFBD, cfg.Aliases),
		Announcer: rt.Announcer,
		Aliases:   cfg.Aliases,
		Location:  cfg.Location,
	}
}

func (rt *Runtime) App() *web.App {
	cfg := rt.Config
	return &web.App{
		Store:     rt.Store,
		Curator:   gameService.NewCurator(rt.Store, rt.CFBD, cfg.Policy, cfg.Aliases),
		Calendar:  rt.CFBD,
		Weeks:     gameService.NewWeekService(rt.Store),
		Importer:  rt.Importer(),
		Announcer: rt.Announcer,
		Aliases:   cfg.Aliases,
		Location:  cfg.Location,
	}
}
