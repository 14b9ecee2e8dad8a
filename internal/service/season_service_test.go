package service

import (
	"testing"

	"github.com/khaild19/10AI/internal/common"
	"github.com/khaild19/10AI/internal/testutils"
)

func TestSeasonService_Lifecycle(t *testing.T) {
	f := setupServices(t)
	u := testutils.CreateUser(t, f.gdb, "alice")

	if _, err := f.seasons.CreateSeason(u.ID, "Summer", nil); err != nil {
		t.Fatalf("CreateSeason failed: %v", err)
	}
	_, err := f.seasons.CreateSeason(u.ID, "Summer", nil)
	assertServiceErrorCode(t, err, common.ErrorCodeConflict)

	_, err = f.seasons.CreateSeason(u.ID, " ", nil)
	assertServiceErrorCode(t, err, common.ErrorCodeValidation)

	if err := f.seasons.RenameSeason(u.ID, "Summer", "Winter", strPtr("cold")); err != nil {
		t.Fatalf("RenameSeason failed: %v", err)
	}
	err = f.seasons.RenameSeason(u.ID, "Summer", "Autumn", nil)
	assertServiceErrorCode(t, err, common.ErrorCodeNotFound)

	seasons, err := f.seasons.ListSeasons(u.ID)
	if err != nil {
		t.Fatalf("ListSeasons failed: %v", err)
	}
	if len(seasons) != 1 || seasons[0].Name != "Winter" {
		t.Fatalf("expected only Winter, got %+v", seasons)
	}

	if err := f.seasons.DeleteSeason(u.ID, "Winter"); err != nil {
		t.Fatalf("DeleteSeason failed: %v", err)
	}
	err = f.seasons.DeleteSeason(u.ID, "Winter")
	assertServiceErrorCode(t, err, common.ErrorCodeNotFound)
}

func TestSeasonService_RenameCollision(t *testing.T) {
	f := setupServices(t)
	u := testutils.CreateUser(t, f.gdb, "alice")

	for _, name := range []string{"Summer", "Winter"} {
		if _, err := f.seasons.CreateSeason(u.ID, name, nil); err != nil {
			t.Fatalf("CreateSeason %s failed: %v", name, err)
		}
	}
	err := f.seasons.RenameSeason(u.ID, "Winter", "Summer", nil)
	assertServiceErrorCode(t, err, common.ErrorCodeConflict)
}
