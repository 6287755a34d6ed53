package importService

import (
	"context"
	"fmt"
	"log"

	"cfbPickem/models"
	"cfbPickem/models/external"
	"cfbPickem/services/common"
	"cfbPickem/services/storeService"
)

const (
	StepDeleteTeams       = "deleteTeams"
	StepDeleteConferences = "deleteConferences"
	StepImportConferences = "importConferences"
	StepImportTeams       = "importTeams"
)

// Steps is the order a full reset runs in.
var Steps = []string{StepDeleteTeams, StepDeleteConferences, StepImportConferences, StepImportTeams}

// ReferenceData is the part of the CFBD client the import reads.
type ReferenceData interface {
	GetConferences(ctx context.Context) ([]external.CFBD_Conference, error)
	GetFBSTeams(ctx context.Context, year int) ([]external.CFBD_Team, error)
}

type StepResult struct {
	Step     string `json:"step"`
	Deleted  *int   `json:"deleted,omitempty"`
	Imported *int   `json:"imported,omitempty"`
	Skipped  *int   `json:"skipped,omitempty"`
}

// Importer loads teams and conferences from the provider into the store.
type Importer struct {
	store storeService.Store
	data  ReferenceData
	year  int
}

func NewImporter(store storeService.Store, data ReferenceData, year int) *Importer {
	return &Importer{store: store, data: data, year: year}
}

func IsStep(step string) bool {
	return common.Contains(Steps, step)
}

// Run executes one named step.
func (im *Importer) Run(ctx context.Context, step string) (StepResult, error) {
	switch step {
	case StepDeleteTeams:
		n, err := storeService.DeleteAll(ctx, im.store.Teams(), nil)
		return StepResult{Step: step, Deleted: &n}, common.Upstream("store teams", err)
	case StepDeleteConferences:
		n, err := storeService.DeleteAll(ctx, im.store.Conferences(), nil)
		return StepResult{Step: step, Deleted: &n}, common.Upstream("store conferences", err)
	case StepImportConferences:
		return im.importConferences(ctx)
	case StepImportTeams:
		return im.importTeams(ctx)
	case "":
		return StepResult{}, common.NewValidationError("step", "No step provided.")
	default:
		return StepResult{}, common.NewValidationError("step", "Unknown step %q.", step)
	}
}

// RunAll executes every step in order and stops at the first failure. Earlier
// steps are not rolled back.
func (im *Importer) RunAll(ctx context.Context) ([]StepResult, error) {
	var results []StepResult
	for _, step := range Steps {
		result, err := im.Run(ctx, step)
		if err != nil {
			return results, fmt.Errorf("%s: %w", step, err)
		}
		log.Printf("import step %s done", step)
		results = append(results, result)
	}
	return results, nil
}

func (im *Importer) importConferences(ctx context.Context) (StepResult, error) {
	result := StepResult{Step: StepImportConferences}

	conferences, err := im.data.GetConferences(ctx)
	if err != nil {
		return result, common.Upstream("cfbd conferences", err)
	}
	existing, err := storeService.FetchAll(ctx, im.store.Conferences(), nil)
	if err != nil {
		return result, common.Upstream("store conferences", err)
	}

	names := make([]string, 0, len(existing))
	for _, c := range existing {
		names = append(names, c.Name)
	}

	imported, skipped := 0, 0
	for _, conf := range conferences {
		if conf.Name == "" || common.ContainsName(names, conf.Name) {
			skipped++
			continue
		}
		record := models.Conference{Name: conf.Name}
		if l, found := conferenceLogos[conf.Name]; found {
			record.ImageURL = &l.imageURL
			record.SmallImageURL = &l.smallImageURL
		}
		if err := im.store.Conferences().Create(ctx, &record); err != nil {
			return result, common.Upstream("store conferences", err)
		}
		names = append(names, conf.Name)
		imported++
	}

	result.Imported, result.Skipped = &imported, &skipped
	return result, nil
}

func (im *Importer) importTeams(ctx context.Context) (StepResult, error) {
	result := StepResult{Step: StepImportTeams}

	teams, err := im.data.GetFBSTeams(ctx, im.year)
	if err != nil {
		return result, common.Upstream("cfbd teams", err)
	}
	conferences, err := storeService.FetchAll(ctx, im.store.Conferences(), nil)
	if err != nil {
		return result, common.Upstream("store conferences", err)
	}
	existing, err := storeService.FetchAll(ctx, im.store.Teams(), nil)
	if err != nil {
		return result, common.Upstream("store teams", err)
	}

	confIDs := make(map[string]string, len(conferences))
	for _, c := range conferences {
		confIDs[common.NormalizeName(c.Name)] = c.ID
	}
	names := make([]string, 0, len(existing))
	for _, t := range existing {
		names = append(names, t.Name)
	}

	imported, skipped := 0, 0
	for _, team := range teams {
		confID, found := confIDs[common.NormalizeName(team.Conference)]
		if !found {
			log.Printf("No conference found for team %s (conference: %s)", team.School, team.Conference)
			skipped++
			continue
		}
		if team.School == "" || common.ContainsName(names, team.School) {
			skipped++
			continue
		}

		record := models.Team{Name: team.School, ConferenceID: confID}
		if len(team.Logos) > 0 && team.Logos[0] != "" {
			image := team.Logos[0]
			record.ImageURL = &image
		}
		if err := im.store.Teams().Create(ctx, &record); err != nil {
			return result, common.Upstream("store teams", err)
		}
		names = append(names, team.School)
		imported++
	}

	result.Imported, result.Skipped = &imported, &skipped
	return result, nil
}
