package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"cfbPickem/models"
	"cfbPickem/services/common"
	"cfbPickem/services/gameService"
	"cfbPickem/services/importService"
	"cfbPickem/services/messageService"
	"cfbPickem/services/storeService"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

// App carries the services the handlers call.
type App struct {
	Store     storeService.Store
	Curator   *gameService.Curator
	Calendar  gameService.Calendar
	Weeks     *gameService.WeekService
	Importer  *importService.Importer
	Announcer messageService.Announcer
	Aliases   map[string]string
	Location  *time.Location
	Now       func() time.Time
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now().UTC()
	}
	return time.Now().UTC()
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func statusFor(err error) int {
	if errors.Is(err, storeService.ErrNotFound) {
		return http.StatusNotFound
	}
	return common.StatusCode(err)
}

func renderError(ctx context.Context, app *App, render *render.Render, w http.ResponseWriter, source string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		common.SendError(ctx, app.Store, source, err)
	}
	render.JSON(w, status, errorResponse{Success: false, Error: err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return common.NewValidationError("body", "invalid JSON: %v", err)
	}
	return nil
}

func (app *App) teamIndex(ctx context.Context) (*gameService.TeamIndex, error) {
	return gameService.LoadTeamIndex(ctx, app.Store, app.Aliases)
}

func healthHandler(app *App, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := app.Store.Ping(r.Context()); err != nil {
			render.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

type teamResponse struct {
	models.Team
	Conference string `json:"conference,omitempty"`
}

func teamsHandler(app *App, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := storeService.FetchAll(r.Context(), app.Store.Teams(), nil)
		if err != nil {
			renderError(r.Context(), app, render, w, "teams", common.Upstream("store teams", err))
			return
		}
		conferences, err := storeService.FetchAll(r.Context(), app.Store.Conferences(), nil)
		if err != nil {
			renderError(r.Context(), app, render, w, "teams", common.Upstream("store conferences", err))
			return
		}

		names := make(map[string]string, len(conferences))
		for _, c := range conferences {
			names[c.ID] = c.Name
		}
		resp := make([]teamResponse, 0, len(teams))
		for _, t := range teams {
			resp = append(resp, teamResponse{Team: t, Conference: names[t.ConferenceID]})
		}
		render.JSON(w, http.StatusOK, map[string]any{"teams": resp})
	}
}

func weeksHandler(app *App, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weeks, err := app.Weeks.ListWeeks(r.Context())
		if err != nil {
			renderError(r.Context(), app, render, w, "weeks", err)
			return
		}
		if weeks == nil {
			weeks = []models.Week{}
		}
		render.JSON(w, http.StatusOK, map[string]any{"weeks": weeks})
	}
}

func weekGamesHandler(app *App, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, games, err := app.Weeks.WeekGames(r.Context(), chi.URLParam(r, "weekID"))
		if err != nil {
			renderError(r.Context(), app, render, w, "week games", err)
			return
		}
		if games == nil {
			games = []models.Game{}
		}
		render.JSON(w, http.StatusOK, map[string]any{"week": week, "games": games})
	}
}

func weekStandingsHandler(app *App, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekID := chi.URLParam(r, "weekID")
		if _, err := app.Store.Weeks().Get(r.Context(), weekID); err != nil {
			renderError(r.Context(), app, render, w, "standings", err)
			return
		}
		standings, err := gameService.WeekStandings(r.Context(), app.Store, weekID)
		if err != nil {
			renderError(r.Context(), app, render, w, "standings", err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"standings": standings})
	}
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, common.NewValidationError(name, "Missing year or week parameter")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, common.NewValidationError(name, "must be a number")
	}
	return v, nil
}

func listGamesHandler(app *App, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := queryInt(r, "year")
		if err != nil {
			renderError(r.Context(), app, render, w, "games list", err)
			return
		}
		week, err := queryInt(r, "week")
		if err != nil {
			renderError(r.Context(), app, render, w, "games list", err)
			return
		}

		games, err := app.Curator.ListGames(r.Context(), gameService.ListRequest{
			Year:       year,
			Week:       week,
			SeasonType: r.URL.Query().Get("seasonType"),
		})
		if err != nil {
			renderError(r.Context(), app, render, w, "games list", err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"games": games})
	}
}

func currentWeekHandler(app *App, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year := 0
		if raw := r.URL.Query().Get("year"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				renderError(r.Context(), app, render, w, "current week", common.NewValidationError("year", "must be a number"))
				return
			}
			year = v
		}

		key, week, err := gameService.CurrentWeek(r.Context(), app.Calendar, year, app.now())
		if err != nil {
			renderError(r.Context(), app, render, w, "current week", err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{
			"year":        key.Year,
			"week":        key.Number,
			"seasonType":  key.SeasonType,
			"season":      key.Season(),
			"description": key.Description(),
			"startDate":   week.StartDate,
			"endDate":     week.EndDate,
		})
	}
}

func addGameHandler(app *App, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gameService.AddGameRequest
		if err := decodeBody(r, &req); err != nil {
			renderError(r.Context(), app, render, w, "games add", err)
			return
		}

		result, err := app.Weeks.AddGame(r.Context(), req)
		if err != nil {
			renderError(r.Context(), app, render, w, "games add", err)
			return
		}
		render.JSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"id":      result.Game.ID,
			"weekId":  result.Week.ID,
		})
	}
}

func removeGameHandler(app *App, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			GameID string `json:"gameId"`
		}
		if err := decodeBody(r, &req); err != nil {
			renderError(r.Context(), app, render, w, "games remove", err)
			return
		}
		if err := app.Weeks.RemoveGame(r.Context(), req.GameID); err != nil {
			renderError(r.Context(), app, render, w, "games remove", err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

type stepResponse struct {
	Success bool `json:"success"`
	importService.StepResult
}

func refreshTeamsHandler(app *App, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Step string `json:"step"`
		}
		if err := decodeBody(r, &req); err != nil {
			renderError(r.Context(), app, render, w, "refresh teams", err)
			return
		}

		result, err := app.Importer.Run(r.Context(), req.Step)
		if err != nil {
			renderError(r.Context(), app, render, w, "refresh teams", err)
			return
		}
		render.JSON(w, http.StatusOK, stepResponse{Success: true, StepResult: result})
	}
}

func announceHandler(app *App, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if app.Announcer == nil || !app.Announcer.Enabled() {
			render.JSON(w, http.StatusServiceUnavailable, errorResponse{Error: "Discord announcements are not configured"})
			return
		}

		week, games, err := app.Weeks.WeekGames(r.Context(), chi.URLParam(r, "weekID"))
		if err != nil {
			renderError(r.Context(), app, render, w, "announce", err)
			return
		}
		teams, err := app.teamIndex(r.Context())
		if err != nil {
			renderError(r.Context(), app, render, w, "announce", err)
			return
		}

		loc := app.Location
		if loc == nil {
			loc = time.UTC
		}
		embeds := messageService.BuildSlateEmbeds(week, games, teams, loc)
		if err := app.Announcer.Send(r.Context(), embeds...); err != nil {
			renderError(r.Context(), app, render, w, "announce", err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"success": true, "games": len(games)})
	}
}
