package jobs

import (
	"context"
	"fmt"
	"riftview/pkg/config"
	"riftview/pkg/ddragon"
	"riftview/pkg/logger"
	"riftview/pkg/redis"
	"time"
)

// The static data documents refreshed by the daily job.
var staticDocuments = []struct {
	kind string
	path string
}{
	{"champion", "champion.json"},
	{"item", "item.json"},
	{"runes", "runesReforged.json"},
	{"summoner", "summoner.json"},
}

// RefreshStaticData re-fetches the Data Dragon version list and every
// cached document for each configured language, resetting the cache TTLs.
func RefreshStaticData(cfg *config.Config) error {
	ctx := context.Background()

	jobLogger, err := logger.NewLogger(cfg.Bucket)
	if err != nil {
		return fmt.Errorf("couldn't create the logger: %w", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("couldn't get redis connection: %w", err)
	}
	defer redisClient.Close()

	client := ddragon.NewClient(cfg.DDragon, redisClient)

	versions, err := client.RefreshVersions(ctx)
	if err != nil {
		jobLogger.Errorf("Couldn't refresh the version list: %v", err)
	} else {
		jobLogger.Infof("Refreshed the version list, latest: %s", versions[0])
	}

	for _, doc := range staticDocuments {
		for _, language := range cfg.DDragon.Languages {
			if _, err := client.ForceRefresh(ctx, doc.kind, doc.path, language); err != nil {
				jobLogger.Errorf("Couldn't refresh %s (%s): %v", doc.kind, language, err)
				continue
			}
			jobLogger.Infof("Refreshed %s (%s)", doc.kind, language)
		}
	}

	jobLogger.EmptyLine()

	objectKey := fmt.Sprintf("scheduler/static-data/%s.log", time.Now().Format("2006-01-02"))
	if err := jobLogger.UploadToS3Bucket(ctx, objectKey); err != nil {
		jobLogger.Errorf("Couldn't upload the job log: %v", err)
	}

	return nil
}
