package handlers

import (
	"net/http"

	"github.com/als904204/go-querydsl/internal/entities"

	"github.com/gofiber/fiber/v2"
)

type memberResponse struct {
	ID       int64   `json:"id"`
	Username *string `json:"username"`
	Age      int     `json:"age"`
	TeamID   *int64  `json:"team_id,omitempty"`
}

func toMemberResponse(m entities.Member) memberResponse {
	return memberResponse{ID: m.ID, Username: m.Username, Age: m.Age, TeamID: m.TeamID}
}

// ListMembers returns a page of members ordered by username descending,
// along with the total count.
func (h *Handler) ListMembers(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 20))
	offset := int64(c.QueryInt("offset", 0))

	members, err := h.store.Members(c.Context(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	total, err := h.store.CountMembers(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	out := make([]memberResponse, len(members))
	for i, m := range members {
		out[i] = toMemberResponse(m)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Members []memberResponse `json:"members"`
		Total   int64            `json:"total"`
	}{Members: out, Total: total})
}

// GetMember returns a single member by username.
func (h *Handler) GetMember(c *fiber.Ctx) error {
	m, err := h.store.MemberByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toMemberResponse(*m))
}
