package scheduler

import (
	"context"
	"testing"

	"cfbPickem/scheduler/scheduler_jobs"
	"cfbPickem/services/storeService"
)

func TestSetupCron(t *testing.T) {
	store := storeService.NewMemStore()
	c, err := SetupCron(context.Background(), Schedules{LineRefresh: "0 0 9 * 8-12 *"}, scheduler_jobs.Deps{Store: store})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer c.Stop()

	if len(c.Entries()) != 1 {
		t.Errorf("expected 1 entry, got %d", len(c.Entries()))
	}
}

func TestSetupCron_BadSchedule(t *testing.T) {
	store := storeService.NewMemStore()
	_, err := SetupCron(context.Background(), Schedules{GameEnd: "every hour"}, scheduler_jobs.Deps{Store: store})
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(store.ErrorLogs()) != 1 {
		t.Errorf("expected the failure to be logged, got %d", len(store.ErrorLogs()))
	}
}
