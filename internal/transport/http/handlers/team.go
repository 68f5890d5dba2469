package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type teamResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListTeams returns all teams ordered by name.
func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.store.Teams(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	out := make([]teamResponse, len(teams))
	for i, team := range teams {
		out[i] = teamResponse{ID: team.ID, Name: team.Name}
	}
	return c.Status(http.StatusOK).JSON(struct {
		Teams []teamResponse `json:"teams"`
	}{Teams: out})
}

// TeamMembers returns the members of the named team.
func (h *Handler) TeamMembers(c *fiber.Ctx) error {
	if _, err := h.store.TeamByName(c.Context(), c.Params("name")); err != nil {
		return writeError(c, err)
	}
	members, err := h.store.MembersOfTeam(c.Context(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}

	out := make([]memberResponse, len(members))
	for i, m := range members {
		out[i] = toMemberResponse(m)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Members []memberResponse `json:"members"`
	}{Members: out})
}

// TeamStats returns each team's average member age.
func (h *Handler) TeamStats(c *fiber.Ctx) error {
	stats, err := h.store.TeamAverageAges(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	type stat struct {
		TeamName   string  `json:"team_name"`
		AverageAge float64 `json:"average_age"`
	}
	out := make([]stat, len(stats))
	for i, s := range stats {
		out[i] = stat{TeamName: s.TeamName, AverageAge: s.AverageAge}
	}
	return c.Status(http.StatusOK).JSON(struct {
		Stats []stat `json:"stats"`
	}{Stats: out})
}
