package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/domain/services"
	"portfolio/internal/httputil"
)

// SkillHandler handles skill HTTP requests
type SkillHandler struct {
	skills services.SkillMutations
	logger *slog.Logger
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skills services.SkillMutations, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{
		skills: skills,
		logger: logger,
	}
}

type skillRequest struct {
	Name        string               `json:"name"`
	Category    string               `json:"category"`
	Proficiency httputil.OptionalInt `json:"proficiency"`
	Icon        string               `json:"icon"`
}

func (req *skillRequest) toInput() *services.SkillInput {
	return &services.SkillInput{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency.Value,
		Icon:        req.Icon,
	}
}

// CreateSkill creates a new skill
// POST /api/admin/skills
func (h *SkillHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req skillRequest
	if !parseBody(w, r, &req) {
		return
	}

	res := h.skills.CreateSkill(r.Context(), httputil.GetIdentity(r), req.toInput())
	respondResult(w, http.StatusCreated, res)
}

// UpdateSkill replaces a skill's fields
// PUT /api/admin/skills/{id}
func (h *SkillHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Skill")
	if !ok {
		return
	}

	var req skillRequest
	if !parseBody(w, r, &req) {
		return
	}

	res := h.skills.UpdateSkill(r.Context(), httputil.GetIdentity(r), id, req.toInput())
	respondResult(w, http.StatusOK, res)
}

// DeleteSkill deletes a skill
// DELETE /api/admin/skills/{id}
func (h *SkillHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Skill")
	if !ok {
		return
	}

	res := h.skills.DeleteSkill(r.Context(), httputil.GetIdentity(r), id)
	respondResult(w, http.StatusOK, res)
}
